package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// Fakes em memória para os testes dos services. Seguem o contrato dos
// repositórios: buscas excluem soft-deleted e retornam (nil, nil) sem match.

type memUserRepo struct {
	seq   int
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok || user.IsDeleted() {
		return nil, nil
	}
	return user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if !user.IsDeleted() && user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByVerifyToken(_ context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, nil
	}
	for _, user := range r.users {
		if !user.IsDeleted() && user.VerifyToken == token {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByResetToken(_ context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, nil
	}
	for _, user := range r.users {
		if !user.IsDeleted() && user.ResetToken == token {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if user, ok := r.users[id]; ok {
		user.SoftDelete()
	}
	return nil
}

func (r *memUserRepo) List(_ context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		if user.IsDeleted() {
			continue
		}
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

type memManagerRepo struct {
	seq     int
	details map[string]*entities.EventManagerDetail
	full    map[string]*repositories.EventManagerFullDetails
}

func newMemManagerRepo() *memManagerRepo {
	return &memManagerRepo{
		details: make(map[string]*entities.EventManagerDetail),
		full:    make(map[string]*repositories.EventManagerFullDetails),
	}
}

func (r *memManagerRepo) Create(_ context.Context, detail *entities.EventManagerDetail) error {
	r.seq++
	if detail.ID == "" {
		detail.ID = fmt.Sprintf("manager-%d", r.seq)
	}
	r.details[detail.ID] = detail
	return nil
}

func (r *memManagerRepo) FindByID(_ context.Context, id string) (*entities.EventManagerDetail, error) {
	detail, ok := r.details[id]
	if !ok || detail.IsDeleted() {
		return nil, nil
	}
	return detail, nil
}

func (r *memManagerRepo) FindByUserID(_ context.Context, userID string) (*entities.EventManagerDetail, error) {
	for _, detail := range r.details {
		if !detail.IsDeleted() && detail.UserID == userID {
			return detail, nil
		}
	}
	return nil, nil
}

func (r *memManagerRepo) Update(_ context.Context, detail *entities.EventManagerDetail) error {
	r.details[detail.ID] = detail
	return nil
}

func (r *memManagerRepo) List(context.Context, int, int) ([]*repositories.EventManagerSummary, error) {
	return nil, nil
}

func (r *memManagerRepo) FullDetailsByID(_ context.Context, id string) (*repositories.EventManagerFullDetails, error) {
	full, ok := r.full[id]
	if !ok {
		return nil, nil
	}
	return full, nil
}

func (r *memManagerRepo) ListByCategory(context.Context, string) ([]*repositories.EventManagerSummary, error) {
	return nil, nil
}

type memReviewRepo struct {
	seq     int
	reviews []*entities.Review
	// Quando presente, listagens escondem avaliações de usuários
	// soft-deleted, como as consultas reais fazem no join.
	users *memUserRepo
}

func (r *memReviewRepo) reviewerLive(review *entities.Review) bool {
	if r.users == nil {
		return true
	}
	user, ok := r.users.users[review.UserID]
	return ok && !user.IsDeleted()
}

func (r *memReviewRepo) Create(_ context.Context, review *entities.Review) error {
	r.seq++
	review.ID = fmt.Sprintf("review-%d", r.seq)
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memReviewRepo) ListByEventManager(_ context.Context, id string) ([]*repositories.ReviewEntry, error) {
	out := []*repositories.ReviewEntry{}
	for _, review := range r.reviews {
		if review.EventManagerID == id && r.reviewerLive(review) {
			out = append(out, &repositories.ReviewEntry{
				ID:        review.ID,
				Rating:    review.Rating,
				Comment:   review.Comment,
				CreatedAt: review.CreatedAt,
			})
		}
	}
	return out, nil
}

func (r *memReviewRepo) TopFiveStar(context.Context) ([]*repositories.FiveStarReview, error) {
	out := []*repositories.FiveStarReview{}
	for _, review := range r.reviews {
		if review.Rating == entities.MaxRating && r.reviewerLive(review) {
			out = append(out, &repositories.FiveStarReview{
				ID:      review.ID,
				Rating:  review.Rating,
				Comment: review.Comment,
			})
			if len(out) == repositories.TopReviewsLimit {
				break
			}
		}
	}
	return out, nil
}

type memCategoryRepo struct {
	seq        int
	categories map[string]*entities.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*entities.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, category *entities.Category) error {
	r.seq++
	if category.ID == "" {
		category.ID = fmt.Sprintf("00000000-0000-4000-8000-%012d", r.seq)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id string) (*entities.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.IsDeleted() {
		return nil, nil
	}
	return category, nil
}

func (r *memCategoryRepo) FindByName(_ context.Context, name string) (*entities.Category, error) {
	for _, category := range r.categories {
		if !category.IsDeleted() && category.Name == name {
			return category, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindByIDs(_ context.Context, ids []string) ([]*entities.Category, error) {
	out := []*entities.Category{}
	for _, id := range ids {
		if category, ok := r.categories[id]; ok && !category.IsDeleted() {
			out = append(out, category)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) Update(_ context.Context, category *entities.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	if category, ok := r.categories[id]; ok {
		category.SoftDelete()
	}
	return nil
}

func (r *memCategoryRepo) List(context.Context) ([]*entities.Category, error) {
	out := []*entities.Category{}
	for _, category := range r.categories {
		if !category.IsDeleted() {
			out = append(out, category)
		}
	}
	return out, nil
}

// fakeUoW executa a função diretamente, sem transação real
type fakeUoW struct {
	calls int
}

func (u *fakeUoW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUoW) Commit(context.Context) error                       { return nil }
func (u *fakeUoW) Rollback(context.Context) error                     { return nil }

func (u *fakeUoW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	u.calls++
	return fn(ctx)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID, role, _ string) (string, error) {
	return "session:" + userID + ":" + role, nil
}

// fakeGenerator emite tokens determinísticos e numerados
type fakeGenerator struct {
	count int
}

func (g *fakeGenerator) HexToken(int) (string, error) {
	g.count++
	return fmt.Sprintf("token-%d", g.count), nil
}

func (g *fakeGenerator) NumericOTP(digits int) (string, error) {
	return strings.Repeat("7", digits), nil
}

type memQueryRepo struct {
	seq     int
	queries []*entities.ContactQuery
}

func (r *memQueryRepo) Create(_ context.Context, query *entities.ContactQuery) error {
	r.seq++
	if query.ID == "" {
		query.ID = fmt.Sprintf("00000000-0000-4000-8000-%012d", r.seq)
	}
	r.queries = append(r.queries, query)
	return nil
}

func (r *memQueryRepo) List(_ context.Context, page, pageSize int) ([]*entities.ContactQuery, error) {
	start := (page - 1) * pageSize
	if start >= len(r.queries) {
		return []*entities.ContactQuery{}, nil
	}
	end := start + pageSize
	if end > len(r.queries) {
		end = len(r.queries)
	}
	return r.queries[start:end], nil
}

// fakeEmailQueue acumula as mensagens enfileiradas
type fakeEmailQueue struct {
	sent []ports.EmailMessage
}

func (q *fakeEmailQueue) Enqueue(_ context.Context, msg ports.EmailMessage) error {
	q.sent = append(q.sent, msg)
	return nil
}

// fakeNotifier acumula os eventos publicados
type fakeNotifier struct {
	events []string
}

func (n *fakeNotifier) Broadcast(event string, _ any) {
	n.events = append(n.events, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }
