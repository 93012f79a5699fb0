package layout

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto maps l onto a structpb.Struct with the same field names as the JSON
// form, so it can travel through codec.Protobuf.
func ToProto(l Layout) (*structpb.Struct, error) {
	stages := make([]any, len(l.Stages))
	for i, st := range l.Stages {
		m := map[string]any{"kind": st.Kind}
		if st.N != 0 {
			m["n"] = st.N
		}
		stages[i] = m
	}
	fields := map[string]any{"stages": stages}
	if l.Name != "" {
		fields["name"] = l.Name
	}
	return structpb.NewStruct(fields)
}

// FromProto is the inverse of ToProto. Unknown fields are rejected.
func FromProto(s *structpb.Struct) (Layout, error) {
	var l Layout
	for k, v := range s.GetFields() {
		switch k {
		case "name":
			sv, ok := v.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return Layout{}, fmt.Errorf("layout: name: want string")
			}
			l.Name = sv.StringValue
		case "stages":
			lv, ok := v.GetKind().(*structpb.Value_ListValue)
			if !ok {
				return Layout{}, fmt.Errorf("layout: stages: want list")
			}
			for i, item := range lv.ListValue.GetValues() {
				st, err := stageFromProto(item)
				if err != nil {
					return Layout{}, fmt.Errorf("layout: stage %d: %w", i, err)
				}
				l.Stages = append(l.Stages, st)
			}
		default:
			return Layout{}, fmt.Errorf("layout: unknown field %q", k)
		}
	}
	return l, nil
}

func stageFromProto(v *structpb.Value) (Stage, error) {
	sv, ok := v.GetKind().(*structpb.Value_StructValue)
	if !ok {
		return Stage{}, fmt.Errorf("want struct")
	}
	var st Stage
	for k, f := range sv.StructValue.GetFields() {
		switch k {
		case "kind":
			kv, ok := f.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return Stage{}, fmt.Errorf("kind: want string")
			}
			st.Kind = kv.StringValue
		case "n":
			nv, ok := f.GetKind().(*structpb.Value_NumberValue)
			if !ok {
				return Stage{}, fmt.Errorf("n: want number")
			}
			n := nv.NumberValue
			if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
				return Stage{}, fmt.Errorf("n: %v is not a valid integer", n)
			}
			st.N = int(n)
		default:
			return Stage{}, fmt.Errorf("unknown field %q", k)
		}
	}
	return st, nil
}
