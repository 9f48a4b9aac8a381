package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"LostFoundAPI/internal/constant"
	"LostFoundAPI/internal/entity"
	"LostFoundAPI/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	queryTimeout = 5 * time.Second
	// geo queries scan more of the index; give them headroom
	geoQueryTimeout = 10 * time.Second
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository struct {
	c *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{c: db.Collection("reports")}
}

// Save inserts or upserts by id. CreatedAt is set once on first insert,
// UpdatedAt on every call.
func (r *ReportRepository) Save(ctx context.Context, report *entity.Report) (*entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now().UTC()
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
		report.CreatedAt = now
	}
	report.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.c.ReplaceOne(ctx, bson.M{"_id": report.ID}, report, opts); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var report entity.Report
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// FindByReporter returns every report filed by a user, any status, any
// visibility, newest first.
func (r *ReportRepository) FindByReporter(ctx context.Context, reporterID primitive.ObjectID) ([]entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.c.Find(ctx, bson.M{"reporter": reporterID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reports []entity.Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// FindPublicActivePage runs the filtered public listing. isPublic: true is
// always part of the filter; reportType is optional.
func (r *ReportRepository) FindPublicActivePage(ctx context.Context, reportType, status string, p model.Pageable) ([]entity.Report, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := buildPublicFilter(reportType, status)

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dir := -1
	if !p.Descending() {
		dir = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: p.SortBy, Value: dir}, {Key: "_id", Value: dir}}).
		SetSkip(p.Offset()).
		SetLimit(int64(p.Size))

	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var reports []entity.Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// FindNear returns public reports within radiusMeters of the point, matching
// status and optionally reportType, ordered by ascending distance.
func (r *ReportRepository) FindNear(ctx context.Context, latitude, longitude, radiusMeters float64, reportType, status string) ([]entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, geoQueryTimeout)
	defer cancel()

	cur, err := r.c.Find(ctx, buildNearFilter(latitude, longitude, radiusMeters, reportType, status))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reports []entity.Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateStatus sets the status and refreshes updatedAt in one atomic $set.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (r *ReportRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.c.CountDocuments(ctx, bson.M{"status": status})
}

func (r *ReportRepository) CountByType(ctx context.Context, reportType string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.c.CountDocuments(ctx, bson.M{"type": reportType})
}

func (r *ReportRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.c.CountDocuments(ctx, bson.M{})
}

// FindByPersonNameContaining matches personDetails.fullName case-insensitively.
func (r *ReportRepository) FindByPersonNameContaining(ctx context.Context, name string) ([]entity.Report, error) {
	return r.findByRegex(ctx, "personDetails.fullName", name)
}

// FindByItemNameContaining matches itemDetails.itemName case-insensitively.
func (r *ReportRepository) FindByItemNameContaining(ctx context.Context, name string) ([]entity.Report, error) {
	return r.findByRegex(ctx, "itemDetails.itemName", name)
}

func (r *ReportRepository) findByRegex(ctx context.Context, field, value string) ([]entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reports []entity.Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) FindByCreatedAtBetween(ctx context.Context, start, end time.Time) ([]entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reports []entity.Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// ExpireOlderThan flips ACTIVE reports created before the cutoff to EXPIRED.
// Returns the number of reports modified.
func (r *ReportRepository) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.c.UpdateMany(ctx,
		bson.M{
			"status":    constant.ReportStatusActive,
			"createdAt": bson.M{"$lt": cutoff},
		},
		bson.M{"$set": bson.M{
			"status":    constant.ReportStatusExpired,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "lastSeenLocation", Value: "2dsphere"}},
			Options: options.Index().SetName("idx_report_location_2dsphere"),
		},
		{
			Keys:    bson.D{{Key: "reporter", Value: 1}},
			Options: options.Index().SetName("idx_report_reporter"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "isPublic", Value: 1}},
			Options: options.Index().SetName("idx_report_status_public"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}, {Key: "isPublic", Value: 1}},
			Options: options.Index().SetName("idx_report_type_status_public"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_report_created_at"),
		},
	}
	_, err := r.c.Indexes().CreateMany(ctx, indexes)
	return err
}

func buildPublicFilter(reportType, status string) bson.M {
	filter := bson.M{
		"isPublic": true,
		"status":   status,
	}
	if reportType != "" {
		filter["type"] = reportType
	}
	return filter
}

// buildNearFilter encodes the geospatial predicate. The stored point is
// GeoJSON, so coordinates go on the wire as [longitude, latitude].
func buildNearFilter(latitude, longitude, radiusMeters float64, reportType, status string) bson.M {
	filter := bson.M{
		"lastSeenLocation": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{longitude, latitude},
				},
				"$maxDistance": radiusMeters,
			},
		},
		"status":   status,
		"isPublic": true,
	}
	if reportType != "" {
		filter["type"] = reportType
	}
	return filter
}
