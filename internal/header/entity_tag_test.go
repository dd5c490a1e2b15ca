package header_test

import (
	"testing"

	"github.com/freerware/restmachine/internal/header"
	"github.com/stretchr/testify/suite"
)

type EntityTagTestSuite struct {
	suite.Suite
}

func TestEntityTagTestSuite(t *testing.T) {
	suite.Run(t, new(EntityTagTestSuite))
}

func (s *EntityTagTestSuite) TestEntityTag_ParseEntityTag() {

	tests := []struct {
		name string
		in   string
		weak bool
		out  string
		err  error
	}{
		{"Strong", `"xyzzy"`, false, "xyzzy", nil},
		{"Weak", `W/"xyzzy"`, true, "xyzzy", nil},
		{"Unquoted", "xyzzy", false, "", header.ErrInvalidEntityTag},
	}

	for _, test := range tests {
		s.Run(test.name, func() {
			// action.
			e, err := header.ParseEntityTag(test.in)

			// assert.
			if test.err != nil {
				s.Require().EqualError(err, test.err.Error())
			} else {
				s.Require().NoError(err)
				s.Equal(test.weak, e.IsWeak())
				s.Equal(test.out, e.Opaque())
			}
		})
	}
}

func (s *EntityTagTestSuite) TestEntityTag_String() {
	weak := header.NewEntityTag(true, "xyzzy")
	strong := header.NewEntityTag(false, "xyzzy")
	s.Equal(`W/"xyzzy"`, weak.String())
	s.Equal(`"xyzzy"`, strong.String())
}

func (s *EntityTagTestSuite) TestEntityTag_StrongEquals() {

	tests := []struct {
		name string
		a    header.EntityTag
		b    header.EntityTag
		out  bool
	}{
		{"BothStrongSameOpaque", header.NewEntityTag(false, "1"), header.NewEntityTag(false, "1"), true},
		{"BothStrongDifferentOpaque", header.NewEntityTag(false, "1"), header.NewEntityTag(false, "2"), false},
		{"OneWeak", header.NewEntityTag(true, "1"), header.NewEntityTag(false, "1"), false},
		{"BothWeak", header.NewEntityTag(true, "1"), header.NewEntityTag(true, "1"), false},
	}

	for _, test := range tests {
		s.Run(test.name, func() {
			s.Equal(test.out, test.a.StrongEquals(test.b))
		})
	}
}

func (s *EntityTagTestSuite) TestEntityTag_WeakEquals() {

	tests := []struct {
		name string
		a    header.EntityTag
		b    header.EntityTag
		out  bool
	}{
		{"BothStrongSameOpaque", header.NewEntityTag(false, "1"), header.NewEntityTag(false, "1"), true},
		{"OneWeakSameOpaque", header.NewEntityTag(true, "1"), header.NewEntityTag(false, "1"), true},
		{"BothWeakSameOpaque", header.NewEntityTag(true, "1"), header.NewEntityTag(true, "1"), true},
		{"DifferentOpaque", header.NewEntityTag(false, "1"), header.NewEntityTag(false, "2"), false},
	}

	for _, test := range tests {
		s.Run(test.name, func() {
			s.Equal(test.out, test.a.WeakEquals(test.b))
		})
	}
}

func (s *EntityTagTestSuite) TestEntityTag_ParseEntityTagMatch() {

	tests := []struct {
		name     string
		in       []string
		wildcard bool
		count    int
		err      error
	}{
		{"Wildcard", []string{"*"}, true, 0, nil},
		{"SingleStrong", []string{`"xyzzy"`}, false, 1, nil},
		{"MultipleWithWeak", []string{`"xyzzy", W/"r2d2xxxx", "c3piozzzz"`}, false, 3, nil},
		{"Empty", []string{}, false, 0, header.ErrEmptyEntityTagMatch},
		{"Unquoted", []string{"xyzzy"}, false, 0, header.ErrInvalidEntityTag},
	}

	for _, test := range tests {
		s.Run(test.name, func() {
			// action.
			m, err := header.ParseEntityTagMatch(test.in)

			// assert.
			if test.err != nil {
				s.Require().EqualError(err, test.err.Error())
			} else {
				s.Require().NoError(err)
				s.Equal(test.wildcard, m.IsWildcard())
				s.Len(m.Tags(), test.count)
			}
		})
	}
}

func (s *EntityTagTestSuite) TestEntityTagMatch_MatchesStrong() {
	m, err := header.ParseEntityTagMatch([]string{`"xyzzy", W/"r2d2xxxx"`})
	s.Require().NoError(err)

	s.True(m.MatchesStrong(header.NewEntityTag(false, "xyzzy")))
	s.False(m.MatchesStrong(header.NewEntityTag(true, "r2d2xxxx")))
	s.False(m.MatchesStrong(header.NewEntityTag(false, "nope")))
	s.True(header.WildcardEntityTagMatch.MatchesStrong(header.NewEntityTag(false, "anything")))
}

func (s *EntityTagTestSuite) TestEntityTagMatch_MatchesWeak() {
	m, err := header.ParseEntityTagMatch([]string{`W/"xyzzy"`})
	s.Require().NoError(err)

	s.True(m.MatchesWeak(header.NewEntityTag(false, "xyzzy")))
	s.True(m.MatchesWeak(header.NewEntityTag(true, "xyzzy")))
	s.False(m.MatchesWeak(header.NewEntityTag(false, "nope")))
	s.True(header.WildcardEntityTagMatch.MatchesWeak(header.NewEntityTag(false, "anything")))
}
