package stale

func (t *Thing) Broken() { undefinedHelper(t) }
