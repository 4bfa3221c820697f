package server

import (
	"context"

	"circles/internal/common/session"
	"circles/internal/model"
	"circles/internal/pkg/db"
	"circles/internal/pkg/log"
	"circles/internal/repository"

	"github.com/pkg/errors"
)

type Server struct {
	Groups       *repository.GroupRepository
	JoinRequests *repository.JoinRequestRepository
	Users        *repository.UserRepository
	Sessions     session.Store
}

func NewServer(db *db.DB, sessions session.Store) *Server {
	return &Server{
		Groups:       repository.NewGroupRepository(db),
		JoinRequests: repository.NewJoinRequestRepository(db),
		Users:        repository.NewUserRepository(db),
		Sessions:     sessions,
	}
}

func intPtr(n int) *int {
	return &n
}

// Seed fills an empty directory with the sample circles. Seeded groups have
// no creator, so nobody can edit or delete them.
func (s *Server) Seed(ctx context.Context) error {
	existing, err := s.Groups.List(ctx)
	if err != nil {
		return errors.Wrap(err, "Seed")
	}
	if len(existing) > 0 {
		return nil
	}
	samples := []*model.Group{
		{
			Name:        "Tuesday Night Torah",
			Description: "A weekly dive into the Parsha with lively discussion and coffee.",
			Leader:      "Rabbi Cohen",
			Schedule:    "Tuesdays at 7:00 PM",
			Location:    "Library (Room 3B)",
			Capacity:    intPtr(15),
		},
		{
			Name:        "Knitting for a Cause",
			Description: "We knit hats and scarves for the local shelter. Beginners welcome!",
			Leader:      "Sarah Levy",
			Schedule:    "Sundays at 10:00 AM",
			Location:    "Social Hall",
			Capacity:    intPtr(20),
		},
		{
			Name:        "Young Professionals Dinner",
			Description: "Monthly Shabbat dinners for members ages 22-35.",
			Leader:      "David Stein",
			Schedule:    "First Friday of the month",
			Location:    "Rotates among members' homes",
			Capacity:    intPtr(12),
		},
	}
	for _, group := range samples {
		if _, err := s.Groups.Create(ctx, group); err != nil {
			return errors.Wrap(err, "Seed")
		}
	}
	log.Infof("seeded %d sample groups", len(samples))
	return nil
}
