package nav

import "testing"

func TestSiteValidate_RequiredFields(t *testing.T) {
	s := Site{Title: "TWD", Description: "desc"}
	if err := s.Validate(); err != nil {
		t.Fatalf("minimal site should pass: %v", err)
	}

	s = Site{Description: "desc"}
	if err := s.Validate(); err == nil {
		t.Error("missing title should fail")
	}

	s = Site{Title: "TWD"}
	if err := s.Validate(); err == nil {
		t.Error("missing description should fail")
	}
}

func TestSiteValidate_BaseNormalised(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"/", ""},
		{"/twd", "/twd"},
		{"/twd/", "/twd"},
		{"twd", "/twd"},
	}
	for _, c := range cases {
		s := Site{Title: "t", Description: "d", Base: c.in}
		if err := s.Validate(); err != nil {
			t.Fatalf("Validate(base=%q): %v", c.in, err)
		}
		if s.Base != c.want {
			t.Errorf("base %q normalised to %q, want %q", c.in, s.Base, c.want)
		}
	}
}

func TestSiteValidate_EntryFields(t *testing.T) {
	s := Site{
		Title:       "t",
		Description: "d",
		Nav:         []Entry{{Label: "Home"}},
	}
	if err := s.Validate(); err == nil {
		t.Error("entry without link should fail")
	}

	s.Nav = nil
	s.Sidebar = []Group{{Text: "Intro", Items: []Entry{{Link: "/x"}}}}
	if err := s.Validate(); err == nil {
		t.Error("sidebar item without label should fail")
	}

	s.Sidebar = []Group{{Items: []Entry{{Label: "x", Link: "/x"}}}}
	if err := s.Validate(); err == nil {
		t.Error("group without heading should fail")
	}
}

func TestSiteValidate_SocialFields(t *testing.T) {
	s := Site{
		Title:       "t",
		Description: "d",
		Socials:     []Social{{Icon: "github"}},
	}
	if err := s.Validate(); err == nil {
		t.Error("social without link should fail")
	}
}
