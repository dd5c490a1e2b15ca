package negotiate_test

import (
	"testing"

	"github.com/freerware/restmachine/internal/header"
	"github.com/freerware/restmachine/internal/negotiate"
	"github.com/stretchr/testify/suite"
)

type CharsetTestSuite struct {
	suite.Suite
}

func TestCharsetTestSuite(t *testing.T) {
	suite.Run(t, new(CharsetTestSuite))
}

func charsetRanges(ss ...string) []header.CharsetRange {
	var out []header.CharsetRange
	for _, s := range ss {
		cr, err := header.NewCharsetRange(s)
		if err != nil {
			panic(err)
		}
		out = append(out, cr)
	}
	return out
}

func (s *CharsetTestSuite) TestBestCharset_ExactMatchCaseInsensitive() {
	offers := []negotiate.CharsetOffer{
		{Index: 0, Charset: "ascii"},
		{Index: 1, Charset: "utf-8"},
	}
	best, ok := negotiate.BestCharset(charsetRanges("UTF-8;q=0.9"), offers)
	s.Require().True(ok)
	s.Equal(1, best.Index)
}

func (s *CharsetTestSuite) TestBestCharset_WildcardPicksFirstUnmentioned() {
	offers := []negotiate.CharsetOffer{
		{Index: 0, Charset: "ascii"},
		{Index: 1, Charset: "utf-8"},
	}
	best, ok := negotiate.BestCharset(charsetRanges("ascii;q=0.1", "*;q=0.5"), offers)
	s.Require().True(ok)
	s.Equal(1, best.Index)
}

func (s *CharsetTestSuite) TestBestCharset_AbsentHeaderPicksFirstOffer() {
	offers := []negotiate.CharsetOffer{
		{Index: 0, Charset: "ascii"},
		{Index: 1, Charset: "utf-8"},
	}
	best, ok := negotiate.BestCharset(nil, offers)
	s.Require().True(ok)
	s.Equal(0, best.Index)
}

func (s *CharsetTestSuite) TestBestCharset_NoMatch() {
	offers := []negotiate.CharsetOffer{
		{Index: 0, Charset: "ascii"},
	}
	_, ok := negotiate.BestCharset(charsetRanges("utf-8"), offers)
	s.False(ok)
}

func (s *CharsetTestSuite) TestBestCharset_NoOffers() {
	_, ok := negotiate.BestCharset(charsetRanges("utf-8"), nil)
	s.False(ok)
}
