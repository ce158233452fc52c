package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/services/geometry"
	"github.com/mcoot/wordmove/internal/services/scoring"
	"github.com/mcoot/wordmove/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(geometry.New(), scoring.New())
}

func (s *ServiceSuite) TestEvaluateFirstMove() {
	var previous model.Board
	proposed := testutil.BuildBoard(testutil.H(7, 7, "HELLO"))

	result, err := s.service.Evaluate(previous, proposed)
	s.Require().NoError(err)

	s.Equal([]string{"HELLO"}, result.WordTexts())
	s.Equal(9, result.Score)
	s.Len(result.Placements, 5)
	s.Require().Len(result.WordScores, 1)
	s.Equal(9, result.WordScores[0].Score)
}

func (s *ServiceSuite) TestEvaluateCrossingMove() {
	previous := testutil.BuildBoard(
		testutil.V(7, 7, "CAT"),
		testutil.H(8, 6, "BAIT"),
		testutil.H(10, 4, "BARS"),
	)
	proposed := testutil.Extend(previous, testutil.H(9, 5, "TATTOO"))

	result, err := s.service.Evaluate(previous, proposed)
	s.Require().NoError(err)

	s.Equal([]string{"TATTOO", "TA", "BAR", "IT", "TO"}, result.WordTexts())
	s.Equal(25, result.Score)
}

func (s *ServiceSuite) TestEvaluateExtension() {
	previous := testutil.BuildBoard(testutil.V(7, 7, "CAT"))
	proposed := testutil.Extend(previous, testutil.V(10, 7, "S"))

	result, err := s.service.Evaluate(previous, proposed)
	s.Require().NoError(err)

	s.Equal([]string{"CATS"}, result.WordTexts())
	s.Equal(6, result.Score)
}

func (s *ServiceSuite) TestEvaluateRejectionHasNoResult() {
	previous := testutil.BuildBoard(testutil.V(7, 7, "CAT"))
	proposed := testutil.Extend(previous, testutil.H(0, 0, "GO"))

	result, err := s.service.Evaluate(previous, proposed)
	s.ErrorIs(err, model.ErrTilesMustConnectToExisting)
	s.Nil(result)
}

func (s *ServiceSuite) TestEvaluateConcurrently() {
	previous := testutil.BuildBoard(testutil.V(7, 7, "CAT"))
	proposed := testutil.Extend(previous, testutil.V(10, 7, "S"))

	var wg sync.WaitGroup
	scores := make([]int, 32)
	for i := range scores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := s.service.Evaluate(previous, proposed)
			if err == nil {
				scores[i] = result.Score
			}
		}(i)
	}
	wg.Wait()

	for _, score := range scores {
		s.Equal(6, score)
	}
}
