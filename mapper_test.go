package tinyyaml_test

// testObject mirrors a typical configuration type: scalar fields of every
// built-in converter type, a nested object and a property.
type testObject struct {
	StringField string
	ShortField  int16
	IntField    int32
	LongField   int64
	FloatField  float32
	DoubleField float64
	ChildObject *testObject
	StringList  []string

	stringProperty string
}

func (o *testObject) StringProperty() string     { return o.stringProperty }
func (o *testObject) SetStringProperty(s string) { o.stringProperty = s }

type record struct {
	ID   int32
	Name string
}

type named struct {
	label string
}

func (n *named) Label() string     { return n.label }
func (n *named) SetLabel(s string) { n.label = s }

type derived struct {
	named
	Inherited string
}

type withEmbedded struct {
	derived
	Own string
}

// Profile is embedded through a pointer that may be nil.
type Profile struct {
	nick string
}

func (p *Profile) Nick() string     { return p.nick }
func (p *Profile) SetNick(s string) { p.nick = s }

type account struct {
	*Profile
	Own string
}

type tagged struct {
	Visible string
	Secret  string `tinyyaml:"-"`
	Renamed string `tinyyaml:"alias"`
	Flag    bool
	Meta    map[string]string
}

type linked struct {
	Name string
	Next *linked
}
