package components

// OptionRegistry tracks every flag token registered by any command in the
// catalog, in registration order. The namespace is flat: membership is not
// scoped by command.
type OptionRegistry struct {
	names   []string
	members map[string]struct{}
}

func NewOptionRegistry() *OptionRegistry {
	return &OptionRegistry{members: map[string]struct{}{}}
}

func (r *OptionRegistry) Register(flagName string) {
	r.names = append(r.names, flagName)
	r.members[flagName] = struct{}{}
}

func (r *OptionRegistry) Has(flagName string) bool {
	_, ok := r.members[flagName]
	return ok
}

// Names returns the registered tokens in registration order.
// Duplicates registered more than once appear more than once.
func (r *OptionRegistry) Names() []string {
	return append([]string(nil), r.names...)
}
