package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildwall/wall-api/internal/core/domain"
	"github.com/wildwall/wall-api/internal/core/ports"
)

type stubPostRepo struct {
	posts  map[int]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[int]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPostRepo) seed(p *domain.Post) *domain.Post {
	r.nextID++
	p.ID = r.nextID
	r.posts[p.ID] = clonePost(p)
	return p
}

func (r *stubPostRepo) FindByStatus(_ context.Context, status domain.PostStatus) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.posts {
		if p.Status == status {
			out = append(out, clonePost(p))
		}
	}
	return out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id int) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		return clonePost(p), nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	return clonePost(r.seed(clonePost(post))), nil
}

func (r *stubPostRepo) Update(_ context.Context, id int, text, color string) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	p.Text = text
	p.Color = color
	return nil
}

func (r *stubPostRepo) SetStatus(_ context.Context, id int, status domain.PostStatus) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	p.Status = status
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

var (
	ownerIdent    = domain.Identity{UserID: 1, RoleCode: domain.RoleWilder}
	wilderIdent   = domain.Identity{UserID: 2, RoleCode: domain.RoleWilder}
	delegateIdent = domain.Identity{UserID: 3, RoleCode: domain.RoleDelegate}
	adminIdent    = domain.Identity{UserID: 4, RoleCode: domain.RoleAdmin}
)

func seedPost(repo *stubPostRepo) *domain.Post {
	return repo.seed(&domain.Post{
		Text:      "hello wall",
		Color:     domain.ColorGreen,
		Status:    domain.PostActive,
		UserID:    1,
		Username:  "alice",
		CreatedAt: time.Now().UTC(),
	})
}

func TestPostService_Create(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ownerIdent, ports.CreatePostInput{
		Text:  "a note",
		Color: domain.ColorPink,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.UserID != ownerIdent.UserID {
		t.Fatalf("owner must come from the identity, got %d", post.UserID)
	}
	if post.Status != domain.PostActive {
		t.Fatalf("new posts must be active, got %s", post.Status)
	}
	if post.Color != domain.ColorPink {
		t.Fatalf("unexpected color: %s", post.Color)
	}
}

func TestPostService_Create_UnknownColorFallsBack(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ownerIdent, ports.CreatePostInput{
		Text:  "a note",
		Color: "#bad0ff",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Color != domain.ColorGreen {
		t.Fatalf("unknown color must fall back to default, got %s", post.Color)
	}
}

func TestPostService_Edit(t *testing.T) {
	tests := []struct {
		name    string
		ident   domain.Identity
		wantErr error
	}{
		{"owner may edit", ownerIdent, nil},
		{"other wilder may not edit", wilderIdent, domain.ErrForbidden},
		{"delegate may not edit", delegateIdent, domain.ErrForbidden},
		{"admin may not edit", adminIdent, domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubPostRepo()
			post := seedPost(repo)
			svc := NewPostService(repo, zerolog.Nop())

			updated, err := svc.Edit(context.Background(), tt.ident, post.ID, ports.UpdatePostInput{
				Text:  "rewritten",
				Color: domain.ColorBlue,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && updated.Text != "rewritten" {
				t.Fatalf("edit did not apply: %+v", updated)
			}
		})
	}
}

func TestPostService_Archive(t *testing.T) {
	tests := []struct {
		name    string
		ident   domain.Identity
		wantErr error
	}{
		{"owner may archive", ownerIdent, nil},
		{"other wilder may not archive", wilderIdent, domain.ErrForbidden},
		{"delegate may archive", delegateIdent, nil},
		{"admin may archive", adminIdent, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubPostRepo()
			post := seedPost(repo)
			svc := NewPostService(repo, zerolog.Nop())

			err := svc.Archive(context.Background(), tt.ident, post.ID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil {
				stored, _ := repo.FindByID(context.Background(), post.ID)
				if stored.Status != domain.PostArchived {
					t.Fatalf("post not archived: %s", stored.Status)
				}
			}
		})
	}
}

func TestPostService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		ident   domain.Identity
		wantErr error
	}{
		{"owner may delete", ownerIdent, nil},
		{"other wilder may not delete", wilderIdent, domain.ErrForbidden},
		{"delegate may delete", delegateIdent, nil},
		{"admin may delete", adminIdent, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubPostRepo()
			post := seedPost(repo)
			svc := NewPostService(repo, zerolog.Nop())

			err := svc.Delete(context.Background(), tt.ident, post.ID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil {
				if _, err := repo.FindByID(context.Background(), post.ID); !errors.Is(err, domain.ErrPostNotFound) {
					t.Fatalf("post still present after delete")
				}
			}
		})
	}
}

// A missing post is reported as not-found before any policy evaluation, for
// every caller role.
func TestPostService_MissingPost_NotFoundBeforeForbidden(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	for _, ident := range []domain.Identity{ownerIdent, wilderIdent, delegateIdent, adminIdent} {
		if err := svc.Delete(context.Background(), ident, 99); !errors.Is(err, domain.ErrPostNotFound) {
			t.Fatalf("delete as %s: expected ErrPostNotFound, got %v", ident.RoleCode, err)
		}
		if err := svc.Archive(context.Background(), ident, 99); !errors.Is(err, domain.ErrPostNotFound) {
			t.Fatalf("archive as %s: expected ErrPostNotFound, got %v", ident.RoleCode, err)
		}
		if _, err := svc.Edit(context.Background(), ident, 99, ports.UpdatePostInput{Text: "x", Color: domain.ColorGreen}); !errors.Is(err, domain.ErrPostNotFound) {
			t.Fatalf("edit as %s: expected ErrPostNotFound, got %v", ident.RoleCode, err)
		}
	}
}

func TestPostService_ListByStatus(t *testing.T) {
	repo := newStubPostRepo()
	seedPost(repo)
	archived := repo.seed(&domain.Post{Text: "old", Color: domain.ColorYellow, Status: domain.PostArchived, UserID: 1})

	svc := NewPostService(repo, zerolog.Nop())

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Status != domain.PostActive {
		t.Fatalf("unexpected active posts: %+v", active)
	}

	arch, err := svc.ListArchived(context.Background())
	if err != nil {
		t.Fatalf("list archived: %v", err)
	}
	if len(arch) != 1 || arch[0].ID != archived.ID {
		t.Fatalf("unexpected archived posts: %+v", arch)
	}
}
