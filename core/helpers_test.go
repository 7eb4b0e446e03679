package core_test

// oneWay is a relation whose converse is never defined; inserting it must
// not create a reverse label.
type oneWay uint8

func (o oneWay) Converse() (oneWay, bool) { return 0, false }
func (o oneWay) Merge(x oneWay) oneWay    { return o & x }

// sym is a symmetric relation: its own converse.
type sym uint8

func (s sym) Converse() (sym, bool) { return s, true }
func (s sym) Merge(x sym) sym       { return s & x }
