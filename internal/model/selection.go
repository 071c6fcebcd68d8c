package model

// MaxExtras is the largest number of distinct extras a selection may carry.
const MaxExtras = 5

// Selection is the set of option ids a shopper has currently chosen.
type Selection struct {
	EngineID  *int64  `json:"engineId"`
	PaintID   *int64  `json:"paintId"`
	WheelsID  *int64  `json:"wheelsId"`
	ExtrasIDs []int64 `json:"extrasIds"`
}

// Normalize returns a copy with duplicate extras removed, first occurrence wins.
// ExtrasIDs is never nil in the result.
func (s Selection) Normalize() Selection {
	out := Selection{
		EngineID:  copyID(s.EngineID),
		PaintID:   copyID(s.PaintID),
		WheelsID:  copyID(s.WheelsID),
		ExtrasIDs: make([]int64, 0, len(s.ExtrasIDs)),
	}
	seen := make(map[int64]struct{}, len(s.ExtrasIDs))
	for _, id := range s.ExtrasIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out.ExtrasIDs = append(out.ExtrasIDs, id)
	}
	return out
}

// Validate checks the extras cap and id signs. Call on a normalized selection.
func (s Selection) Validate() error {
	for _, id := range []*int64{s.EngineID, s.PaintID, s.WheelsID} {
		if id != nil && *id < 0 {
			return ErrInvalidOptionID
		}
	}
	for _, id := range s.ExtrasIDs {
		if id < 0 {
			return ErrInvalidOptionID
		}
	}
	if len(s.ExtrasIDs) > MaxExtras {
		return ErrTooManyExtras
	}
	return nil
}

// IsEmpty reports whether no option is selected.
func (s Selection) IsEmpty() bool {
	return s.EngineID == nil && s.PaintID == nil && s.WheelsID == nil && len(s.ExtrasIDs) == 0
}

// OptionIDs returns every referenced id without duplicates.
func (s Selection) OptionIDs() []int64 {
	ids := make([]int64, 0, 3+len(s.ExtrasIDs))
	seen := make(map[int64]struct{}, cap(ids))
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range []*int64{s.EngineID, s.PaintID, s.WheelsID} {
		if id != nil {
			add(*id)
		}
	}
	for _, id := range s.ExtrasIDs {
		add(id)
	}
	return ids
}

// ID returns a pointer to id, for building selections.
func ID(id int64) *int64 {
	return &id
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
