package domain

const (
	// DefaultMaxPeople is the soft cap on list size used when config is silent.
	DefaultMaxPeople = 10

	// DefaultMaxTasksPerPerson is the soft cap on tasks per person.
	DefaultMaxTasksPerPerson = 5
)

// Stats summarizes a people list for the stats header.
type Stats struct {
	People        int
	Tasks         int
	Completed     int
	Pending       int
	CompletionPct float64
}

// ComputeStats aggregates task counts across people.
func ComputeStats(people []Person) Stats {
	s := Stats{People: len(people)}
	for _, p := range people {
		s.Tasks += len(p.Tasks)
		s.Completed += p.CompletedCount()
	}
	s.Pending = s.Tasks - s.Completed
	if s.Tasks > 0 {
		s.CompletionPct = float64(s.Completed) / float64(s.Tasks) * 100
	}
	return s
}
