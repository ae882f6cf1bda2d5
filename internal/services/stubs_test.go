package services

import (
	"context"
	"errors"
	"strings"

	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/mail"
)

// notFoundError satisfies the repository error classification used by the
// firestore layer.
type notFoundError struct{ msg string }

func (e notFoundError) Error() string       { return e.msg }
func (e notFoundError) IsNotFound() bool    { return true }
func (e notFoundError) IsConflict() bool    { return false }
func (e notFoundError) IsUnavailable() bool { return false }

func errNotFound() error { return notFoundError{msg: "not found"} }

type memoryCartRepository struct {
	carts map[string]domain.Cart
	fail  error
}

func newMemoryCartRepository() *memoryCartRepository {
	return &memoryCartRepository{carts: map[string]domain.Cart{}}
}

func (r *memoryCartRepository) List(context.Context) ([]domain.Cart, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]domain.Cart, 0, len(r.carts))
	for _, cart := range r.carts {
		out = append(out, cart)
	}
	return out, nil
}

func (r *memoryCartRepository) Get(_ context.Context, id string) (domain.Cart, error) {
	if r.fail != nil {
		return domain.Cart{}, r.fail
	}
	cart, ok := r.carts[id]
	if !ok {
		return domain.Cart{}, errNotFound()
	}
	return cart, nil
}

func (r *memoryCartRepository) FindByGuestID(_ context.Context, guestID string) (domain.Cart, error) {
	if r.fail != nil {
		return domain.Cart{}, r.fail
	}
	for _, cart := range r.carts {
		if cart.GuestID == guestID {
			return cart, nil
		}
	}
	return domain.Cart{}, errNotFound()
}

func (r *memoryCartRepository) Save(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	if r.fail != nil {
		return domain.Cart{}, r.fail
	}
	if cart.ID == "" {
		cart.ID = "cart-1"
	}
	r.carts[cart.ID] = cart
	return cart, nil
}

type stubServiceRepository struct {
	services map[string]domain.Service
}

func newStubServiceRepository(services ...domain.Service) *stubServiceRepository {
	byKey := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		byKey[svc.Slug] = svc
		if svc.ID != "" {
			byKey[svc.ID] = svc
		}
	}
	return &stubServiceRepository{services: byKey}
}

func (r *stubServiceRepository) List(context.Context) ([]domain.Service, error) {
	seen := map[string]bool{}
	out := []domain.Service{}
	for _, svc := range r.services {
		if !seen[svc.Slug] {
			seen[svc.Slug] = true
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *stubServiceRepository) GetByIDOrSlug(_ context.Context, key string) (domain.Service, error) {
	svc, ok := r.services[key]
	if !ok {
		return domain.Service{}, errNotFound()
	}
	return svc, nil
}

func (r *stubServiceRepository) Create(_ context.Context, svc domain.Service) (domain.Service, error) {
	if svc.ID == "" {
		svc.ID = "svc-" + svc.Slug
	}
	r.services[svc.Slug] = svc
	r.services[svc.ID] = svc
	return svc, nil
}

func (r *stubServiceRepository) Update(_ context.Context, id string, svc domain.Service) (domain.Service, error) {
	svc.ID = id
	r.services[svc.Slug] = svc
	r.services[id] = svc
	return svc, nil
}

func (r *stubServiceRepository) Delete(_ context.Context, id string) error {
	svc, ok := r.services[id]
	if ok {
		delete(r.services, svc.Slug)
	}
	delete(r.services, id)
	return nil
}

type stubSubscriberRepository struct {
	byEmail map[string]domain.Subscriber
	created []domain.Subscriber
}

func newStubSubscriberRepository(existing ...domain.Subscriber) *stubSubscriberRepository {
	byEmail := make(map[string]domain.Subscriber, len(existing))
	for _, sub := range existing {
		byEmail[strings.ToLower(sub.Email)] = sub
	}
	return &stubSubscriberRepository{byEmail: byEmail}
}

func (r *stubSubscriberRepository) FindByEmail(_ context.Context, email string) (domain.Subscriber, error) {
	sub, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.Subscriber{}, errNotFound()
	}
	return sub, nil
}

func (r *stubSubscriberRepository) Create(_ context.Context, sub domain.Subscriber) (domain.Subscriber, error) {
	sub.ID = "sub-1"
	r.byEmail[strings.ToLower(sub.Email)] = sub
	r.created = append(r.created, sub)
	return sub, nil
}

type stubContactRepository struct {
	created []domain.ContactSubmission
	fail    error
}

func (r *stubContactRepository) Create(_ context.Context, submission domain.ContactSubmission) (domain.ContactSubmission, error) {
	if r.fail != nil {
		return domain.ContactSubmission{}, r.fail
	}
	submission.ID = "contact-1"
	r.created = append(r.created, submission)
	return submission, nil
}

func (r *stubContactRepository) List(context.Context) ([]domain.ContactSubmission, error) {
	return r.created, nil
}

type capturingMailer struct {
	sent []mail.Message
	fail error
}

func (m *capturingMailer) Send(_ context.Context, msg mail.Message) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubUserRepository struct {
	users map[string]domain.User
}

func (r *stubUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.User{}, errNotFound()
	}
	return user, nil
}

type stubChatMessageRepository struct {
	created []domain.ChatMessage
	fail    error
}

func (r *stubChatMessageRepository) Create(_ context.Context, msg domain.ChatMessage) (domain.ChatMessage, error) {
	if r.fail != nil {
		return domain.ChatMessage{}, r.fail
	}
	msg.ID = "chat-1"
	r.created = append(r.created, msg)
	return msg, nil
}

type stubCompleter struct {
	reply string
	model string
	err   error
}

func (c *stubCompleter) Complete(context.Context, string) (string, string, error) {
	if c.err != nil {
		return "", c.model, c.err
	}
	return c.reply, c.model, nil
}

type recordingAuditLogger struct {
	entries []auditEntry
}

type auditEntry struct {
	Collection string
	Doc        map[string]any
}

func (l *recordingAuditLogger) Log(_ context.Context, collection string, doc map[string]any) bool {
	l.entries = append(l.entries, auditEntry{Collection: collection, Doc: doc})
	return true
}

type memoryThemePrefRepository struct {
	prefs map[string]domain.ThemePreference
}

func newMemoryThemePrefRepository() *memoryThemePrefRepository {
	return &memoryThemePrefRepository{prefs: map[string]domain.ThemePreference{}}
}

func (r *memoryThemePrefRepository) FindBySession(_ context.Context, sessionID string) (domain.ThemePreference, error) {
	for _, pref := range r.prefs {
		if pref.SessionID == sessionID {
			return pref, nil
		}
	}
	return domain.ThemePreference{}, errNotFound()
}

func (r *memoryThemePrefRepository) Save(_ context.Context, pref domain.ThemePreference) (domain.ThemePreference, error) {
	if pref.ID == "" {
		pref.ID = "pref-1"
	}
	r.prefs[pref.ID] = pref
	return pref, nil
}

type memoryGlobalThemeRepository struct {
	cfg *domain.GlobalThemeConfig
}

func (r *memoryGlobalThemeRepository) Get(context.Context) (domain.GlobalThemeConfig, error) {
	if r.cfg == nil {
		return domain.GlobalThemeConfig{}, errNotFound()
	}
	return *r.cfg, nil
}

func (r *memoryGlobalThemeRepository) Set(_ context.Context, cfg domain.GlobalThemeConfig) error {
	r.cfg = &cfg
	return nil
}

type memorySiteConfigRepository struct {
	cfg *domain.SiteConfig
}

func (r *memorySiteConfigRepository) Get(context.Context) (domain.SiteConfig, error) {
	if r.cfg == nil {
		return domain.SiteConfig{}, errNotFound()
	}
	return *r.cfg, nil
}

func (r *memorySiteConfigRepository) Set(_ context.Context, cfg domain.SiteConfig) error {
	r.cfg = &cfg
	return nil
}

type memoryProjectRepository struct {
	projects map[string]domain.Project
	nextID   int
}

func newMemoryProjectRepository() *memoryProjectRepository {
	return &memoryProjectRepository{projects: map[string]domain.Project{}}
}

func (r *memoryProjectRepository) List(context.Context) ([]domain.Project, error) {
	out := []domain.Project{}
	for _, project := range r.projects {
		out = append(out, project)
	}
	return out, nil
}

func (r *memoryProjectRepository) Get(_ context.Context, id string) (domain.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return domain.Project{}, errNotFound()
	}
	return project, nil
}

func (r *memoryProjectRepository) Create(_ context.Context, project domain.Project) (domain.Project, error) {
	r.nextID++
	project.ID = "proj-" + string(rune('0'+r.nextID))
	r.projects[project.ID] = project
	return project, nil
}

func (r *memoryProjectRepository) Update(_ context.Context, id string, project domain.Project) (domain.Project, error) {
	project.ID = id
	r.projects[id] = project
	return project, nil
}

func (r *memoryProjectRepository) Delete(_ context.Context, id string) error {
	delete(r.projects, id)
	return nil
}

type memoryAboutRepository struct {
	entries map[string]domain.AboutEntry
	nextID  int
}

func newMemoryAboutRepository() *memoryAboutRepository {
	return &memoryAboutRepository{entries: map[string]domain.AboutEntry{}}
}

func (r *memoryAboutRepository) List(context.Context) ([]domain.AboutEntry, error) {
	out := []domain.AboutEntry{}
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	return out, nil
}

func (r *memoryAboutRepository) Get(_ context.Context, id string) (domain.AboutEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return domain.AboutEntry{}, errNotFound()
	}
	return entry, nil
}

func (r *memoryAboutRepository) Create(_ context.Context, entry domain.AboutEntry) (domain.AboutEntry, error) {
	r.nextID++
	entry.ID = "about-" + string(rune('0'+r.nextID))
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *memoryAboutRepository) Update(_ context.Context, id string, entry domain.AboutEntry) (domain.AboutEntry, error) {
	entry.ID = id
	r.entries[id] = entry
	return entry, nil
}

func (r *memoryAboutRepository) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

type memoryTechnologyRepository struct {
	techs map[string]domain.Technology
}

func newMemoryTechnologyRepository(techs ...domain.Technology) *memoryTechnologyRepository {
	byID := map[string]domain.Technology{}
	for _, tech := range techs {
		byID[tech.ID] = tech
	}
	return &memoryTechnologyRepository{techs: byID}
}

func (r *memoryTechnologyRepository) List(context.Context) ([]domain.Technology, error) {
	out := []domain.Technology{}
	for _, tech := range r.techs {
		out = append(out, tech)
	}
	return out, nil
}

func (r *memoryTechnologyRepository) Get(_ context.Context, id string) (domain.Technology, error) {
	tech, ok := r.techs[id]
	if !ok {
		return domain.Technology{}, errNotFound()
	}
	return tech, nil
}

func (r *memoryTechnologyRepository) Create(_ context.Context, tech domain.Technology) (domain.Technology, error) {
	if tech.ID == "" {
		tech.ID = "tech-" + tech.Name
	}
	r.techs[tech.ID] = tech
	return tech, nil
}

func (r *memoryTechnologyRepository) Update(_ context.Context, id string, tech domain.Technology) (domain.Technology, error) {
	tech.ID = id
	r.techs[id] = tech
	return tech, nil
}

func (r *memoryTechnologyRepository) Delete(_ context.Context, id string) error {
	delete(r.techs, id)
	return nil
}

var errStoreDown = errors.New("store unavailable")
