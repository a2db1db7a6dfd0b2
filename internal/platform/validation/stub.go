package validation

type StubValidator struct {
	ValidateStructFunc func(any) map[string]string
}

var _ Validator = (*StubValidator)(nil)

func (s *StubValidator) ValidateStruct(st any) map[string]string {
	if s.ValidateStructFunc == nil {
		panic("StubValidator: ValidateStructFunc not set")
	}
	return s.ValidateStructFunc(st)
}
