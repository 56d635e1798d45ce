package selection

// StageView is a read-only copy of one stage for rendering
type StageView struct {
	Stage        Stage
	Title        string
	Labels       []string
	Highlight    int
	HasHighlight bool
	Locked       bool
	Active       bool
}

// View is a read-only copy of the whole cascade
type View struct {
	Stages [StageCount]StageView
	Active Stage
}

// View copies the current cascade state; label slices are not shared
func (c *Cascade) View() View {
	active := c.Active()
	var v View
	v.Active = active
	for i, s := range c.stages {
		st := Stage(i)
		idx, ok := s.Selected()
		v.Stages[i] = StageView{
			Stage:        st,
			Title:        st.Title(),
			Labels:       s.Labels(),
			Highlight:    idx,
			HasHighlight: ok,
			Locked:       s.Locked(),
			Active:       st == active,
		}
	}
	return v
}
