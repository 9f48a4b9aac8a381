package service

import (
	"context"
	"strings"
	"time"

	"LostFoundAPI/internal/entity"
	"LostFoundAPI/internal/model"
	"LostFoundAPI/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users map[primitive.ObjectID]*entity.User
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*entity.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, repository.ErrUserDuplicate
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	f.users[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

type nearArgs struct {
	latitude     float64
	longitude    float64
	radiusMeters float64
	reportType   string
	status       string
}

type pageArgs struct {
	reportType string
	status     string
	pageable   model.Pageable
}

type fakeReportStore struct {
	reports map[primitive.ObjectID]*entity.Report
	err     error

	lastNear nearArgs
	lastPage pageArgs

	pageTotal int64
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{reports: make(map[primitive.ObjectID]*entity.Report)}
}

func (f *fakeReportStore) Save(ctx context.Context, report *entity.Report) (*entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	now := time.Now().UTC()
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
		report.CreatedAt = now
	}
	report.UpdatedAt = now
	stored := *report
	f.reports[stored.ID] = &stored
	return report, nil
}

func (f *fakeReportStore) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.reports[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, repository.ErrReportNotFound
}

func (f *fakeReportStore) FindByReporter(ctx context.Context, reporterID primitive.ObjectID) ([]entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Report
	for _, r := range f.reports {
		if r.ReporterID == reporterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) FindPublicActivePage(ctx context.Context, reportType, status string, p model.Pageable) ([]entity.Report, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.lastPage = pageArgs{reportType: reportType, status: status, pageable: p}
	var out []entity.Report
	for _, r := range f.reports {
		if !r.IsPublic || r.Status != status {
			continue
		}
		if reportType != "" && r.Type != reportType {
			continue
		}
		out = append(out, *r)
	}
	total := f.pageTotal
	if total == 0 {
		total = int64(len(out))
	}
	return out, total, nil
}

func (f *fakeReportStore) FindNear(ctx context.Context, latitude, longitude, radiusMeters float64, reportType, status string) ([]entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastNear = nearArgs{
		latitude:     latitude,
		longitude:    longitude,
		radiusMeters: radiusMeters,
		reportType:   reportType,
		status:       status,
	}
	var out []entity.Report
	for _, r := range f.reports {
		if r.IsPublic && r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if f.err != nil {
		return f.err
	}
	r, ok := f.reports[id]
	if !ok {
		return repository.ErrReportNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeReportStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, r := range f.reports {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeReportStore) CountByType(ctx context.Context, reportType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, r := range f.reports {
		if r.Type == reportType {
			n++
		}
	}
	return n, nil
}

func (f *fakeReportStore) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.reports)), nil
}

func (f *fakeReportStore) FindByPersonNameContaining(ctx context.Context, name string) ([]entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Report
	for _, r := range f.reports {
		if r.PersonDetails != nil && containsFold(r.PersonDetails.FullName, name) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) FindByItemNameContaining(ctx context.Context, name string) ([]entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Report
	for _, r := range f.reports {
		if r.ItemDetails != nil && containsFold(r.ItemDetails.ItemName, name) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) FindByCreatedAtBetween(ctx context.Context, start, end time.Time) ([]entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Report
	for _, r := range f.reports {
		if !r.CreatedAt.Before(start) && !r.CreatedAt.After(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

