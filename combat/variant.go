package combat

// Variant is one concrete sub-action under a command
type Variant struct {
	Name     string  `yaml:"name"`
	Damage   uint16  `yaml:"damage"`
	Duration float64 `yaml:"duration"`
	TimeCost float64 `yaml:"time_cost"`
	ManaCost uint16  `yaml:"mana_cost"`
}

func (v Variant) String() string {
	return v.Name
}

// VariantTable maps every command to its ordered variants
type VariantTable map[Command][]Variant

// Validate requires an entry for every storable command and rejects the sentinel
func (t VariantTable) Validate() error {
	for cmd := range t {
		if !cmd.Valid() {
			return Newf(CodeInvalidCommand, "variant table keyed by %s", cmd)
		}
	}
	for _, cmd := range AllCommands() {
		if _, ok := t[cmd]; !ok {
			return Newf(CodeInvalidArgument, "variant table missing %s", cmd)
		}
	}
	return nil
}

// Clone returns a deep copy
func (t VariantTable) Clone() VariantTable {
	out := make(VariantTable, len(t))
	for cmd, vs := range t {
		out[cmd] = append([]Variant(nil), vs...)
	}
	return out
}
