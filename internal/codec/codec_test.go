package codec

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePeople() []domain.Person {
	return []domain.Person{
		{ID: "p1", Name: "Ana", Tasks: []domain.Task{{ID: "t1", Title: "Buy milk", Completed: true}}},
		{ID: "p2", Name: "Ben", Tasks: []domain.Task{}},
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", NameJSON},
		{"json", NameJSON},
		{"JSON", NameJSON},
		{" cbor ", NameCBOR},
	}
	for _, tc := range tests {
		c, err := ByName(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, c.Name())
	}

	_, err := ByName("xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown codec")
}

func TestJSON_UsesLowercaseFieldNames(t *testing.T) {
	data, err := JSON{}.Marshal(samplePeople())
	require.NoError(t, err)

	assert.Equal(t,
		`[{"id":"p1","name":"Ana","tasks":[{"id":"t1","title":"Buy milk","completed":true}]},{"id":"p2","name":"Ben","tasks":[]}]`,
		string(data))
}

func TestJSON_LeavesHTMLCharactersUnescaped(t *testing.T) {
	people := []domain.Person{{ID: "p1", Name: "Tom & Jerry <3> \u2028", Tasks: []domain.Task{}}}

	data, err := JSON{}.Marshal(people)
	require.NoError(t, err)
	assert.Equal(t, "[{\"id\":\"p1\",\"name\":\"Tom & Jerry <3> \u2028\",\"tasks\":[]}]", string(data))
	assert.False(t, bytes.HasSuffix(data, []byte("\n")), "no trailing newline")
}

func TestJSON_KeepsEscapedBackslashBeforeU2028Text(t *testing.T) {
	// A literal backslash followed by "u2028" is not a line separator.
	people := []domain.Person{{ID: "p1", Name: `C:\u2028\dir`, Tasks: []domain.Task{}}}

	data, err := JSON{}.Marshal(people)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1","name":"C:\\u2028\\dir","tasks":[]}]`, string(data))

	var decoded []domain.Person
	require.NoError(t, JSON{}.Unmarshal(data, &decoded))
	assert.Equal(t, people[0].Name, decoded[0].Name)
}

func TestJSON_MarshalIndent(t *testing.T) {
	data, err := JSON{}.MarshalIndent([]domain.Person{{ID: "p1", Name: "A & B", Tasks: []domain.Task{}}}, "  ")
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"id\": \"p1\",\n    \"name\": \"A & B\",\n    \"tasks\": []\n  }\n]", string(data))
}

func TestCodecs_ReencodeIsByteIdentical(t *testing.T) {
	for _, c := range []Codec{JSON{}, CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			first, err := c.Marshal(samplePeople())
			require.NoError(t, err)

			var decoded []domain.Person
			require.NoError(t, c.Unmarshal(first, &decoded))
			if diff := cmp.Diff(samplePeople(), decoded, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("decoded mismatch (-want +got):\n%s", diff)
			}

			second, err := c.Marshal(decoded)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(first, second))
		})
	}
}

func TestCBOR_RejectsGarbage(t *testing.T) {
	var decoded []domain.Person
	err := CBOR{}.Unmarshal([]byte{0xff, 0x00, 0x13}, &decoded)
	assert.Error(t, err)
}
