package usecases

import (
	"context"
	"strconv"

	"BE-Cafe-Corner/app/entities"

	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

// MockReservationRepository is a map-backed test double for
// ReservationRepository.
type MockReservationRepository struct {
	reservations map[string]entities.ReservationData
	codes        map[string]bool
	nextID       int

	CreateFunc     func(ctx context.Context, res entities.ReservationData) (entities.ReservationData, error)
	FindByDateFunc func(ctx context.Context, date string) ([]entities.ReservationData, error)
}

func NewMockReservationRepository() *MockReservationRepository {
	return &MockReservationRepository{
		reservations: make(map[string]entities.ReservationData),
		codes:        make(map[string]bool),
	}
}

func (m *MockReservationRepository) FindByDate(ctx context.Context, date string) ([]entities.ReservationData, error) {
	if m.FindByDateFunc != nil {
		return m.FindByDateFunc(ctx, date)
	}
	var out []entities.ReservationData
	for _, res := range m.reservations {
		if res.Date == date {
			out = append(out, res)
		}
	}
	return out, nil
}

func (m *MockReservationRepository) Create(ctx context.Context, res entities.ReservationData) (entities.ReservationData, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, res)
	}
	if m.codes[res.Code] {
		return entities.ReservationData{}, duplicateKeyErr()
	}
	m.nextID++
	res.ID = strconv.Itoa(m.nextID)
	m.reservations[res.ID] = res
	m.codes[res.Code] = true
	return res, nil
}

func (m *MockReservationRepository) GetByCode(ctx context.Context, code string) (entities.ReservationData, error) {
	for _, res := range m.reservations {
		if res.Code == code {
			return res, nil
		}
	}
	return entities.ReservationData{}, mongo.ErrNoDocuments
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id string) (entities.ReservationData, error) {
	res, ok := m.reservations[id]
	if !ok {
		return entities.ReservationData{}, mongo.ErrNoDocuments
	}
	return res, nil
}

func (m *MockReservationRepository) List(ctx context.Context, date, status string, limit, offset int) ([]entities.ReservationData, int, error) {
	var all []entities.ReservationData
	for _, res := range m.reservations {
		if date != "" && res.Date != date {
			continue
		}
		if status != "" && res.Status != status {
			continue
		}
		all = append(all, res)
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	res, ok := m.reservations[id]
	if !ok {
		return 0, nil
	}
	res.Status = status
	m.reservations[id] = res
	return 1, nil
}

func (m *MockReservationRepository) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := m.reservations[id]; !ok {
		return 0, nil
	}
	delete(m.reservations, id)
	return 1, nil
}

// MockSettingsRepository serves a fixed settings document.
type MockSettingsRepository struct {
	Settings entities.Settings
	GetFunc  func(ctx context.Context) (entities.Settings, error)
}

func NewMockSettingsRepository(capacity int) *MockSettingsRepository {
	return &MockSettingsRepository{Settings: entities.Settings{
		SiteName:            "Cafe Corner",
		ReservationCapacity: capacity,
	}}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (entities.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return m.Settings, nil
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings entities.Settings) error {
	m.Settings = settings
	return nil
}

// MockMailer records sent mail instead of dialing SMTP.
type MockMailer struct {
	StatusMails  []string
	ResetMails   []string
	ContactMails []string
}

func (m *MockMailer) SendReservationStatus(toEmail, name, code, date, timeStr, status string) error {
	m.StatusMails = append(m.StatusMails, toEmail+":"+status)
	return nil
}

func (m *MockMailer) SendPasswordReset(toEmail, resetToken string) error {
	m.ResetMails = append(m.ResetMails, toEmail)
	return nil
}

func (m *MockMailer) SendContactNotification(name, email, subject, body string) error {
	m.ContactMails = append(m.ContactMails, email)
	return nil
}

// MockMenuRepository is a map-backed test double for MenuRepository.
type MockMenuRepository struct {
	items  map[string]entities.MenuItem
	nextID int
}

func NewMockMenuRepository() *MockMenuRepository {
	return &MockMenuRepository{items: make(map[string]entities.MenuItem)}
}

func (m *MockMenuRepository) Create(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	m.nextID++
	item.ID = strconv.Itoa(m.nextID)
	m.items[item.ID] = item
	return item, nil
}

func (m *MockMenuRepository) GetAll(ctx context.Context, name, category string, availableOnly bool, limit, offset int) ([]entities.MenuItem, int, error) {
	var out []entities.MenuItem
	for _, item := range m.items {
		if category != "" && item.Category != category {
			continue
		}
		if availableOnly && !item.Available {
			continue
		}
		out = append(out, item)
	}
	return out, len(out), nil
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id string) (entities.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return entities.MenuItem{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (m *MockMenuRepository) Update(ctx context.Context, id string, item entities.MenuItem) (int64, error) {
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	item.ID = id
	m.items[id] = item
	return 1, nil
}

func (m *MockMenuRepository) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	delete(m.items, id)
	return 1, nil
}

func (m *MockMenuRepository) Count(ctx context.Context) (int, error) {
	return len(m.items), nil
}

// MockBlogRepository is a map-backed test double for BlogRepository.
type MockBlogRepository struct {
	posts  map[string]entities.BlogPost
	nextID int
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{posts: make(map[string]entities.BlogPost)}
}

func (m *MockBlogRepository) Create(ctx context.Context, post entities.BlogPost) (entities.BlogPost, error) {
	for _, p := range m.posts {
		if p.Slug == post.Slug {
			return entities.BlogPost{}, duplicateKeyErr()
		}
	}
	m.nextID++
	post.ID = strconv.Itoa(m.nextID)
	m.posts[post.ID] = post
	return post, nil
}

func (m *MockBlogRepository) GetAll(ctx context.Context, search string, publishedOnly bool, limit, offset int) ([]entities.BlogPost, int, error) {
	var out []entities.BlogPost
	for _, post := range m.posts {
		if publishedOnly && !post.Published {
			continue
		}
		out = append(out, post)
	}
	return out, len(out), nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (entities.BlogPost, error) {
	post, ok := m.posts[id]
	if !ok {
		return entities.BlogPost{}, mongo.ErrNoDocuments
	}
	return post, nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error) {
	for _, post := range m.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return entities.BlogPost{}, mongo.ErrNoDocuments
}

func (m *MockBlogRepository) Update(ctx context.Context, id string, post entities.BlogPost) (int64, error) {
	if _, ok := m.posts[id]; !ok {
		return 0, nil
	}
	post.ID = id
	m.posts[id] = post
	return 1, nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := m.posts[id]; !ok {
		return 0, nil
	}
	delete(m.posts, id)
	return 1, nil
}

func (m *MockBlogRepository) CountPublished(ctx context.Context) (int, error) {
	count := 0
	for _, post := range m.posts {
		if post.Published {
			count++
		}
	}
	return count, nil
}

// MockCommentRepository is a map-backed test double for CommentRepository.
type MockCommentRepository struct {
	comments map[string]entities.Comment
	nextID   int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{comments: make(map[string]entities.Comment)}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment entities.Comment) (entities.Comment, error) {
	m.nextID++
	comment.ID = strconv.Itoa(m.nextID)
	m.comments[comment.ID] = comment
	return comment, nil
}

func (m *MockCommentRepository) GetByPost(ctx context.Context, postID, status string) ([]entities.Comment, error) {
	var out []entities.Comment
	for _, comment := range m.comments {
		if comment.PostID != postID {
			continue
		}
		if status != "" && comment.Status != status {
			continue
		}
		out = append(out, comment)
	}
	return out, nil
}

func (m *MockCommentRepository) GetByStatus(ctx context.Context, status string, limit, offset int) ([]entities.Comment, int, error) {
	var out []entities.Comment
	for _, comment := range m.comments {
		if status != "" && comment.Status != status {
			continue
		}
		out = append(out, comment)
	}
	return out, len(out), nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (entities.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return entities.Comment{}, mongo.ErrNoDocuments
	}
	return comment, nil
}

func (m *MockCommentRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	comment, ok := m.comments[id]
	if !ok {
		return 0, nil
	}
	comment.Status = status
	m.comments[id] = comment
	return 1, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := m.comments[id]; !ok {
		return 0, nil
	}
	delete(m.comments, id)
	return 1, nil
}

func (m *MockCommentRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	count := 0
	for _, comment := range m.comments {
		if comment.Status == status {
			count++
		}
	}
	return count, nil
}

// MockContactRepository is a map-backed test double for ContactRepository.
type MockContactRepository struct {
	messages map[string]entities.ContactMessage
	nextID   int
}

func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{messages: make(map[string]entities.ContactMessage)}
}

func (m *MockContactRepository) Create(ctx context.Context, msg entities.ContactMessage) (entities.ContactMessage, error) {
	m.nextID++
	msg.ID = strconv.Itoa(m.nextID)
	m.messages[msg.ID] = msg
	return msg, nil
}

func (m *MockContactRepository) GetAll(ctx context.Context, unreadOnly bool, limit, offset int) ([]entities.ContactMessage, int, error) {
	var out []entities.ContactMessage
	for _, msg := range m.messages {
		if unreadOnly && msg.Read {
			continue
		}
		out = append(out, msg)
	}
	return out, len(out), nil
}

func (m *MockContactRepository) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	msg, ok := m.messages[id]
	if !ok {
		return entities.ContactMessage{}, mongo.ErrNoDocuments
	}
	return msg, nil
}

func (m *MockContactRepository) MarkRead(ctx context.Context, id string) (int64, error) {
	msg, ok := m.messages[id]
	if !ok {
		return 0, nil
	}
	msg.Read = true
	m.messages[id] = msg
	return 1, nil
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := m.messages[id]; !ok {
		return 0, nil
	}
	delete(m.messages, id)
	return 1, nil
}

func (m *MockContactRepository) CountUnread(ctx context.Context) (int, error) {
	count := 0
	for _, msg := range m.messages {
		if !msg.Read {
			count++
		}
	}
	return count, nil
}

// MockUserRepository is a map-backed test double for UserRepository.
type MockUserRepository struct {
	users  map[string]entities.User
	resets map[string]entities.PasswordReset
	nextID int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[string]entities.User),
		resets: make(map[string]entities.PasswordReset),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user entities.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return duplicateKeyErr()
		}
	}
	m.nextID++
	user.ID = strconv.Itoa(m.nextID)
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) toGetUser(user entities.User) entities.GetUser {
	return entities.GetUser{
		Id:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
	}
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (entities.GetUser, string, error) {
	for _, user := range m.users {
		if user.Username == username {
			return m.toGetUser(user), user.Password, nil
		}
	}
	return entities.GetUser{}, "", mongo.ErrNoDocuments
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (entities.GetUser, string, error) {
	for _, user := range m.users {
		if user.Email == email {
			return m.toGetUser(user), user.Password, nil
		}
	}
	return entities.GetUser{}, "", mongo.ErrNoDocuments
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (entities.GetUser, error) {
	user, ok := m.users[id]
	if !ok {
		return entities.GetUser{}, mongo.ErrNoDocuments
	}
	return m.toGetUser(user), nil
}

func (m *MockUserRepository) Update(ctx context.Context, id string, input entities.UpdateUser) (int64, error) {
	user, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	user.Username = input.Username
	user.Email = input.Email
	user.Name = input.Name
	m.users[id] = user
	return 1, nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	for id, user := range m.users {
		if user.Email == email {
			user.Password = passwordHash
			m.users[id] = user
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockUserRepository) SaveResetToken(ctx context.Context, reset entities.PasswordReset) error {
	m.resets[reset.Token] = reset
	return nil
}

func (m *MockUserRepository) GetResetToken(ctx context.Context, token string) (entities.PasswordReset, error) {
	reset, ok := m.resets[token]
	if !ok {
		return entities.PasswordReset{}, mongo.ErrNoDocuments
	}
	return reset, nil
}

func (m *MockUserRepository) DeleteResetToken(ctx context.Context, token string) error {
	delete(m.resets, token)
	return nil
}

// MockDashboardRepository answers reservation stats from a fixed data set.
type MockDashboardRepository struct {
	Reservations []entities.ReservationData
}

func (m *MockDashboardRepository) CountReservations(ctx context.Context, startDate, endDate, status string) (int, error) {
	count := 0
	for _, res := range m.Reservations {
		if res.Date < startDate || res.Date > endDate {
			continue
		}
		if status != "" && res.Status != status {
			continue
		}
		count++
	}
	return count, nil
}

func (m *MockDashboardRepository) SumGuests(ctx context.Context, startDate, endDate string) (int, error) {
	sum := 0
	for _, res := range m.Reservations {
		if res.Date < startDate || res.Date > endDate {
			continue
		}
		sum += res.PartySize
	}
	return sum, nil
}
