package models

import "encoding/json"

// AI-authored plan JSON sometimes carries a bare object or scalar where an
// array was expected. The list types below absorb that at the decoding
// boundary so the rest of the code never has to check.

type VideoList []Video

func (l *VideoList) UnmarshalJSON(data []byte) error {
	var many []Video
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one Video
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = VideoList{one}
	return nil
}

type BreakList []BreakWindow

func (l *BreakList) UnmarshalJSON(data []byte) error {
	var many []BreakWindow
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one BreakWindow
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = BreakList{one}
	return nil
}

type IntList []int

func (l *IntList) UnmarshalJSON(data []byte) error {
	var many []int
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one int
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = IntList{one}
	return nil
}
