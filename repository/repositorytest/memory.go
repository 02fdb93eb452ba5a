// Package repositorytest provides in-memory implementations of the repository
// interfaces for tests that exercise services and handlers end to end.
package repositorytest

import (
	"context"
	"fmt"
	"go-social-api/model"
	"go-social-api/repository"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// store is a mutex-guarded map of documents keyed by ID. Every read and write
// copies, so callers never share memory with the store.
type store[T any] struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]*T
	id   func(*T) primitive.ObjectID
	copy func(*T) *T
}

func newStore[T any](id func(*T) primitive.ObjectID, copy func(*T) *T) *store[T] {
	return &store[T]{docs: map[primitive.ObjectID]*T{}, id: id, copy: copy}
}

func (s *store[T]) Insert(_ context.Context, doc *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[s.id(doc)] = s.copy(doc)
	return nil
}

func (s *store[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.copy(doc), nil
}

func (s *store[T]) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// Len returns the number of stored documents.
func (s *store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// update runs fn on the stored document under the lock.
func (s *store[T]) update(id primitive.ObjectID, fn func(*T) error) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	return s.copy(doc), nil
}

func (s *store[T]) filter(keep func(*T) bool, less func(a, b *T) bool) []*T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*T{}
	for _, doc := range s.docs {
		if keep(doc) {
			out = append(out, s.copy(doc))
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func paginate[T any](items []*T, page model.PageRequest) ([]*T, int64) {
	total := int64(len(items))
	start := min(max(page.Skip(), 0), total)
	end := min(start+min(max(page.Limit, 0), total-start), total)
	return items[start:end], total
}

// UserStore implements repository.IUserRepository.
type UserStore struct {
	*store[model.User]
}

func NewUserStore() *UserStore {
	return &UserStore{store: newStore(
		func(u *model.User) primitive.ObjectID { return u.ID },
		func(u *model.User) *model.User {
			c := *u
			c.RefreshTokens = append([]string{}, u.RefreshTokens...)
			return &c
		},
	)}
}

// Insert enforces the unique username and email indexes.
func (s *UserStore) Insert(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	for _, existing := range s.docs {
		if existing.Username == u.Username {
			s.mu.Unlock()
			return fmt.Errorf("%w: index: username_unique", repository.ErrDuplicateKey)
		}
		if existing.Email == u.Email {
			s.mu.Unlock()
			return fmt.Errorf("%w: index: email_unique", repository.ErrDuplicateKey)
		}
	}
	s.mu.Unlock()
	return s.store.Insert(ctx, u)
}

func (s *UserStore) findFirst(match func(*model.User) bool) (*model.User, error) {
	found := s.filter(match, func(a, b *model.User) bool { return a.ID.Hex() < b.ID.Hex() })
	if len(found) == 0 {
		return nil, repository.ErrNotFound
	}
	return found[0], nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	return s.findFirst(func(u *model.User) bool { return u.Username == username })
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return s.findFirst(func(u *model.User) bool { return u.Email == email })
}

func (s *UserStore) List(_ context.Context, username string) ([]*model.User, error) {
	users := s.filter(
		func(u *model.User) bool { return username == "" || u.Username == username },
		func(a, b *model.User) bool { return a.ID.Hex() < b.ID.Hex() },
	)
	for _, u := range users {
		u.Password = ""
		u.RefreshTokens = nil
	}
	return users, nil
}

func (s *UserStore) UpdateProfile(_ context.Context, id primitive.ObjectID, upd model.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	for otherID, other := range s.docs {
		if otherID == id {
			continue
		}
		if other.Username == upd.Username {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: index: username_unique", repository.ErrDuplicateKey)
		}
		if other.Email == upd.Email {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: index: email_unique", repository.ErrDuplicateKey)
		}
	}
	s.mu.Unlock()

	return s.update(id, func(u *model.User) error {
		u.Username, u.Email = upd.Username, upd.Email
		u.FirstName, u.LastName = upd.FirstName, upd.LastName
		if upd.ProfileURL != "" {
			u.ProfileURL = upd.ProfileURL
		}
		return nil
	})
}

func (s *UserStore) PushRefreshToken(_ context.Context, id primitive.ObjectID, token string) error {
	_, err := s.update(id, func(u *model.User) error {
		u.RefreshTokens = append(u.RefreshTokens, token)
		return nil
	})
	return err
}

func (s *UserStore) RemoveRefreshToken(_ context.Context, id primitive.ObjectID, token string) (bool, error) {
	var removed bool
	_, err := s.update(id, func(u *model.User) error {
		removed = u.HasRefreshToken(token)
		u.RefreshTokens = without(u.RefreshTokens, token)
		return nil
	})
	if err == repository.ErrNotFound {
		return false, nil
	}
	return removed, err
}

func (s *UserStore) RotateRefreshToken(_ context.Context, id primitive.ObjectID, oldToken, newToken string) (bool, error) {
	var rotated bool
	_, err := s.update(id, func(u *model.User) error {
		if !u.HasRefreshToken(oldToken) {
			return nil
		}
		rotated = true
		u.RefreshTokens = append(without(u.RefreshTokens, oldToken), newToken)
		return nil
	})
	if err == repository.ErrNotFound {
		return false, nil
	}
	return rotated, err
}

func (s *UserStore) ClearRefreshTokens(_ context.Context, id primitive.ObjectID) error {
	_, err := s.update(id, func(u *model.User) error {
		u.RefreshTokens = []string{}
		return nil
	})
	if err == repository.ErrNotFound {
		return nil
	}
	return err
}

// Tokens returns the active refresh tokens of a user.
func (s *UserStore) Tokens(id primitive.ObjectID) []string {
	u, err := s.FindByID(context.Background(), id)
	if err != nil {
		return nil
	}
	return u.RefreshTokens
}

func without(tokens []string, token string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != token {
			out = append(out, t)
		}
	}
	return out
}

// PostStore implements repository.IPostRepository.
type PostStore struct {
	*store[model.Post]
}

func NewPostStore() *PostStore {
	return &PostStore{store: newStore(
		func(p *model.Post) primitive.ObjectID { return p.ID },
		func(p *model.Post) *model.Post {
			c := *p
			c.Likes = append([]primitive.ObjectID{}, p.Likes...)
			return &c
		},
	)}
}

func (s *PostStore) List(_ context.Context, f model.PostFilter, page model.PageRequest) ([]*model.Post, int64, error) {
	title := strings.ToLower(f.Title)
	posts := s.filter(
		func(p *model.Post) bool {
			if f.Sender != nil && p.Sender != *f.Sender {
				return false
			}
			return title == "" || strings.Contains(strings.ToLower(p.Title), title)
		},
		func(a, b *model.Post) bool {
			if a.CreatedAt.Equal(b.CreatedAt) {
				return a.ID.Hex() > b.ID.Hex()
			}
			return a.CreatedAt.After(b.CreatedAt)
		},
	)
	items, total := paginate(posts, page)
	return items, total, nil
}

func (s *PostStore) Update(_ context.Context, id primitive.ObjectID, upd model.PostUpdate) (*model.Post, error) {
	return s.update(id, func(p *model.Post) error {
		p.Title, p.Content = upd.Title, upd.Content
		if upd.PostURL != "" {
			p.PostURL = upd.PostURL
		}
		return nil
	})
}

func (s *PostStore) ToggleLike(_ context.Context, id, userID primitive.ObjectID) (*model.Post, error) {
	return s.update(id, func(p *model.Post) error {
		if p.LikedBy(userID) {
			likes := make([]primitive.ObjectID, 0, len(p.Likes))
			for _, l := range p.Likes {
				if l != userID {
					likes = append(likes, l)
				}
			}
			p.Likes = likes
			return nil
		}
		p.Likes = append(p.Likes, userID)
		return nil
	})
}

// CommentStore implements repository.ICommentRepository.
type CommentStore struct {
	*store[model.Comment]
}

func NewCommentStore() *CommentStore {
	return &CommentStore{store: newStore(
		func(c *model.Comment) primitive.ObjectID { return c.ID },
		func(c *model.Comment) *model.Comment {
			cp := *c
			return &cp
		},
	)}
}

func commentOrder(a, b *model.Comment) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID.Hex() < b.ID.Hex()
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

func (s *CommentStore) List(_ context.Context, f model.CommentFilter, page model.PageRequest) ([]*model.Comment, int64, error) {
	comments := s.filter(func(c *model.Comment) bool {
		return f.PostID == nil || c.PostID == *f.PostID
	}, commentOrder)
	items, total := paginate(comments, page)
	return items, total, nil
}

func (s *CommentStore) ListByPost(_ context.Context, postID primitive.ObjectID) ([]*model.Comment, error) {
	return s.filter(func(c *model.Comment) bool { return c.PostID == postID }, commentOrder), nil
}

func (s *CommentStore) UpdateContent(_ context.Context, id primitive.ObjectID, content string) (*model.Comment, error) {
	return s.update(id, func(c *model.Comment) error {
		c.Content = content
		return nil
	})
}

func (s *CommentStore) DeleteByPostID(_ context.Context, postID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, c := range s.docs {
		if c.PostID == postID {
			delete(s.docs, id)
			n++
		}
	}
	return n, nil
}

var (
	_ repository.IUserRepository    = (*UserStore)(nil)
	_ repository.IPostRepository    = (*PostStore)(nil)
	_ repository.ICommentRepository = (*CommentStore)(nil)
)
