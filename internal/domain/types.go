package domain

// TestMethod identifies the test that is currently being documented.
type TestMethod struct {
	Name     string // Leaf test name (e.g. "TestGetUser" or a Ginkgo It text)
	Suite    string // Enclosing test or container hierarchy, may be empty
	Location string // file:line of the test, may be empty
}

// FullName returns the suite and name joined by a slash, or just the name.
func (m TestMethod) FullName() string {
	if m.Suite == "" {
		return m.Name
	}
	return m.Suite + "/" + m.Name
}
