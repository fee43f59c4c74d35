package services

import (
	"context"
	"log"
	"sort"

	"trustmap/internal/session"
	"trustmap/internal/upstream"
)

type FavoritesServiceInterface interface {
	Load(sess *session.Session, ctx context.Context) ([]string, error)
	// Toggle flips membership optimistically: the session set changes first,
	// and is rolled back if the upstream mutation fails for anything other
	// than the recognized duplicate-add answer.
	Toggle(sess *session.Session, branchID string, ctx context.Context) (bool, error)
	IDs(sess *session.Session) []string
}

type favoritesService struct {
	favoriteClient upstream.FavoriteClient
}

func NewFavoritesService(favoriteClient upstream.FavoriteClient) FavoritesServiceInterface {
	return &favoritesService{favoriteClient: favoriteClient}
}

func (s *favoritesService) Load(sess *session.Session, ctx context.Context) ([]string, error) {
	ids, err := s.favoriteClient.FetchFavoriteBranchIDs(ctx)
	if err != nil {
		log.Printf("Error fetching favorites: %v", err)
		return nil, err
	}
	sess.ReplaceFavorites(ids)
	return ids, nil
}

func (s *favoritesService) Toggle(sess *session.Session, branchID string, ctx context.Context) (bool, error) {
	if sess.HasFavorite(branchID) {
		sess.RemoveFavorite(branchID)
		if err := s.favoriteClient.RemoveFavorite(ctx, branchID); err != nil {
			log.Printf("Error removing favorite %s, rolling back: %v", branchID, err)
			sess.AddFavorite(branchID)
			return true, err
		}
		return false, nil
	}

	sess.AddFavorite(branchID)
	// AddFavorite already treats the upstream's "already favorited" answer
	// as success, which keeps the add idempotent.
	if err := s.favoriteClient.AddFavorite(ctx, branchID); err != nil {
		log.Printf("Error adding favorite %s, rolling back: %v", branchID, err)
		sess.RemoveFavorite(branchID)
		return false, err
	}
	return true, nil
}

func (s *favoritesService) IDs(sess *session.Session) []string {
	set := sess.FavoriteIDs()
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
