package activity

// ListActivityOptions provides filtering options for listing journal entries.
// Empty filters match everything; a zero Limit returns every entry.
type ListActivityOptions struct {
	Dictionary string
	Word       *string
	Limit      int
}
