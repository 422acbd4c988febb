package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"

	"casaok/internal/domain/entity"
	apperrors "casaok/pkg/errors"
)

type fakeUserRepo struct {
	users  map[string]*entity.User
	getErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("User", nil)
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *fakeUserRepo) Upsert(ctx context.Context, user *entity.User) error {
	existing, ok := r.users[user.ID]
	if !ok {
		copy := *user
		r.users[user.ID] = &copy
		return nil
	}
	existing.FullName = user.FullName
	existing.Email = user.Email
	existing.Role = user.Role
	if user.Phone != "" {
		existing.Phone = user.Phone
	}
	if user.PartnerCode != "" {
		existing.PartnerCode = user.PartnerCode
	}
	return nil
}

func (r *fakeUserRepo) FindByPartnerCode(ctx context.Context, partnerCode string, limit, offset int) ([]*entity.User, int64, error) {
	var matches []*entity.User
	for _, user := range r.users {
		if user.PartnerCode == partnerCode {
			copy := *user
			matches = append(matches, &copy)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	total := int64(len(matches))
	if offset > len(matches) {
		offset = len(matches)
	}
	matches = matches[offset:]
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, total, nil
}

type fakePropertyRepo struct {
	properties map[string]*entity.Property
	seq        int
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]*entity.Property)}
}

func (r *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		r.seq++
		property.ID = fmt.Sprintf("prop-%d", r.seq)
	}
	copy := *property
	r.properties[property.ID] = &copy
	return nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	property, ok := r.properties[id]
	if !ok {
		return nil, apperrors.NotFound("Property", nil)
	}
	copy := *property
	return &copy, nil
}

func (r *fakePropertyRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Property, error) {
	var matches []*entity.Property
	for _, property := range r.properties {
		if property.OwnerUID == ownerUID {
			copy := *property
			matches = append(matches, &copy)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

type fakeTicketRepo struct {
	tickets    map[string]*entity.Ticket
	seq        int
	failCreate bool
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*entity.Ticket)}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *entity.Ticket) error {
	if r.failCreate {
		return apperrors.Internal("Failed to create ticket", nil)
	}
	if ticket.ID == "" {
		r.seq++
		ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	}
	copy := *ticket
	r.tickets[ticket.ID] = &copy
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, apperrors.NotFound("Ticket", nil)
	}
	copy := *ticket
	return &copy, nil
}

func (r *fakeTicketRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Ticket, error) {
	var matches []*entity.Ticket
	for _, ticket := range r.tickets {
		if ticket.OwnerUID == ownerUID {
			copy := *ticket
			matches = append(matches, &copy)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeTicketRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Ticket, int64, error) {
	var matches []*entity.Ticket
	for _, ticket := range r.tickets {
		if status == "" || ticket.Status == status {
			copy := *ticket
			matches = append(matches, &copy)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	total := int64(len(matches))
	if offset > len(matches) {
		offset = len(matches)
	}
	matches = matches[offset:]
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, total, nil
}

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
	seq    int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*entity.Quote)}
}

func (r *fakeQuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	if quote.ID == "" {
		r.seq++
		quote.ID = fmt.Sprintf("quote-%d", r.seq)
	}
	copy := *quote
	r.quotes[quote.ID] = &copy
	return nil
}

func (r *fakeQuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, apperrors.NotFound("Quote", nil)
	}
	copy := *quote
	return &copy, nil
}

func (r *fakeQuoteRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Quote, error) {
	var matches []*entity.Quote
	for _, quote := range r.quotes {
		if quote.OwnerUID == ownerUID {
			copy := *quote
			matches = append(matches, &copy)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeQuoteRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Quote, int64, error) {
	var matches []*entity.Quote
	for _, quote := range r.quotes {
		if status == "" || quote.Status == status {
			copy := *quote
			matches = append(matches, &copy)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, int64(len(matches)), nil
}

func (r *fakeQuoteRepo) UpdateStatus(ctx context.Context, id, status string, estimatedValue *float64) error {
	quote, ok := r.quotes[id]
	if !ok {
		return apperrors.NotFound("Quote", nil)
	}
	quote.Status = status
	if estimatedValue != nil {
		value := *estimatedValue
		quote.EstimatedValue = &value
	}
	return nil
}

type fakeCatalogRepo struct {
	entries []*entity.ServiceCatalogEntry
}

func newFakeCatalogRepo(entries ...*entity.ServiceCatalogEntry) *fakeCatalogRepo {
	return &fakeCatalogRepo{entries: entries}
}

func (r *fakeCatalogRepo) Create(ctx context.Context, entry *entity.ServiceCatalogEntry) error {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("svc-%d", len(r.entries)+1)
	}
	copy := *entry
	r.entries = append(r.entries, &copy)
	return nil
}

func (r *fakeCatalogRepo) GetByName(ctx context.Context, name string) (*entity.ServiceCatalogEntry, error) {
	for _, entry := range r.entries {
		if entry.Name == name {
			copy := *entry
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) List(ctx context.Context) ([]*entity.ServiceCatalogEntry, error) {
	result := make([]*entity.ServiceCatalogEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		copy := *entry
		result = append(result, &copy)
	}
	return result, nil
}

type fakeStorage struct {
	uploaded   []string
	deleted    []string
	failAfter  int
	uploadSeen int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{failAfter: -1}
}

func (s *fakeStorage) UploadTicketPhoto(ctx context.Context, file io.Reader, contentType, ownerUID string) (string, error) {
	if s.failAfter >= 0 && s.uploadSeen >= s.failAfter {
		return "", fmt.Errorf("upload failed")
	}
	s.uploadSeen++
	url := fmt.Sprintf("https://storage.googleapis.com/test-bucket/tickets/%s/photo-%d.jpg", ownerUID, s.uploadSeen)
	s.uploaded = append(s.uploaded, url)
	return url, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}

type fakeAuthClient struct {
	tokens      map[string]string
	credentials map[string]string
	nextUID     string
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		tokens:      make(map[string]string),
		credentials: make(map[string]string),
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	uid := f.nextUID
	if uid == "" {
		uid = "uid-" + email
	}
	f.credentials[email] = password
	f.tokens["token-"+email] = uid
	return uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, ok := f.tokens[token]
	if !ok {
		return "", fmt.Errorf("invalid token")
	}
	return uid, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	stored, ok := f.credentials[email]
	if !ok || stored != password {
		return "", fmt.Errorf("invalid credentials")
	}
	return "token-" + email, nil
}
