package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/srinix/gamehub/internal/services/ledger"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: full journey from registration through stats and leaderboards
func (s *IntegrationSuite) TestRegisterPlayAndRankFlow() {
	// Step 1: Two users register
	_, err := s.app.AuthService.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	_, err = s.app.AuthService.Register(s.ctx, "bob", "secret456")
	s.Require().NoError(err)

	// Step 2: Alice logs in and gets a working session
	aliceSession, err := s.app.AuthService.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	alice, err := s.app.AuthService.GetUser(aliceSession.Token)
	s.Require().NoError(err)

	bobSession, err := s.app.AuthService.Login(s.ctx, "bob", "secret456")
	s.Require().NoError(err)
	bob, err := s.app.AuthService.GetUser(bobSession.Token)
	s.Require().NoError(err)

	// Step 3: Both play; Alice keeps coming back to Snake
	s.Require().NoError(s.app.LedgerService.RecordPlay(s.ctx, alice.ID, "Snake", 3600))
	s.app.MockClock.Advance(time.Hour)
	s.Require().NoError(s.app.LedgerService.RecordPlay(s.ctx, alice.ID, "Snake", 61))
	s.Require().NoError(s.app.LedgerService.RecordPlay(s.ctx, alice.ID, "Tetra", 120))
	s.Require().NoError(s.app.LedgerService.RecordPlay(s.ctx, bob.ID, "Snake", 300))

	// Step 4: Alice's profile stats reflect her plays only
	stats, err := s.app.LedgerService.GetUserStats(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal(2, stats.GamesPlayed)
	s.Equal(int64(3), stats.TotalPlays)
	s.Equal("1:03:01", stats.TotalDurationFormatted)

	// Step 5: Leaderboards rank across everyone
	topGames, err := s.app.LedgerService.TopGamesByPlays(s.ctx, ledger.DefaultLeaderboardLimit)
	s.Require().NoError(err)
	s.Require().Len(topGames, 2)
	s.Equal("Snake", topGames[0].GameTitle)
	s.Equal(int64(3), topGames[0].TotalPlays)

	topPlayers, err := s.app.LedgerService.TopPlayersByPlays(s.ctx, ledger.DefaultLeaderboardLimit)
	s.Require().NoError(err)
	s.Require().Len(topPlayers, 2)
	s.Equal("alice", topPlayers[0].Username)
	s.Equal(int64(3), topPlayers[0].TotalPlays)

	// Step 6: Logout invalidates the session
	s.app.AuthService.InvalidateSession(aliceSession.Token)
	_, err = s.app.AuthService.GetUser(aliceSession.Token)
	s.Error(err)
}

// Test: sessions expire on the clock, plays survive
func (s *IntegrationSuite) TestSessionExpiryKeepsLedger() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	session, err := s.app.AuthService.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	alice, err := s.app.AuthService.GetUser(session.Token)
	s.Require().NoError(err)

	s.Require().NoError(s.app.LedgerService.RecordPlay(s.ctx, alice.ID, "Chess", 90))

	// A week later the session is dead
	s.app.MockClock.Advance(7*24*time.Hour + time.Minute)
	_, err = s.app.AuthService.ValidateSession(session.Token)
	s.Error(err)

	// A fresh login finds the same account with its history intact
	session, err = s.app.AuthService.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	stats, err := s.app.LedgerService.GetUserStats(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), stats.TotalPlays)
	s.Equal("0:01:30", stats.TotalDurationFormatted)

	user, err := s.app.AuthService.GetUser(session.Token)
	s.Require().NoError(err)
	s.Require().NotNil(user.LastLogin)
	s.Equal(s.app.MockClock.Now(), *user.LastLogin)
}

// Test: contact submissions land in the same store
func (s *IntegrationSuite) TestContactSubmissionStored() {
	msg, err := s.app.ContactService.Submit(s.ctx, "", "alice@example.com", "Feedback", "More snake games please")
	s.Require().NoError(err)
	s.Equal("Anonymous", msg.Name)
	s.Equal(s.app.MockClock.Now(), msg.SubmittedAt)
}
