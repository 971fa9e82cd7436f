package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/mongodb"

// Task represents the repository used for interacting with Task documents.
type Task struct {
	coll *mongo.Collection
}

type document struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	Status      string             `bson:"status"`
	Photos      []string           `bson:"photos"`
	CreatedBy   *string            `bson:"createdBy"`
	CreatedAt   interface{}        `bson:"createdAt"`
}

// NewTask instantiates the Task repository using the "tasks" collection.
func NewTask(db *mongo.Database) *Task {
	return &Task{
		coll: db.Collection("tasks"),
	}
}

// Create writes a new document. createdAt is set by the server through $currentDate.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	photos := params.Photos
	if photos == nil {
		photos = []string{}
	}

	id := primitive.NewObjectID()

	_, err := t.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{
				"title":       params.Title,
				"description": params.Description,
				"priority":    params.Priority.String(),
				"status":      string(params.Status),
				"photos":      photos,
				"createdBy":   params.CreatedBy,
			},
			"$currentDate": bson.M{"createdAt": true},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "coll.UpdateOne")
	}

	return t.Find(ctx, id.Hex())
}

// Find returns the requested task by searching its id.
func (t *Task) Find(ctx context.Context, id string) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "primitive.ObjectIDFromHex")
	}

	var doc document

	if err := t.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "task not found")
		}

		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "coll.FindOne")
	}

	return convertDocument(doc), nil
}

// CreatedBetween returns the tasks created in [start, end). Documents written through Create carry a
// BSON date, createdAt values stored as strings or {seconds, nanoseconds} documents by other clients
// are matched too, using day-wide bounds; callers keep only what falls inside the exact window.
// Documents that can't be decoded are skipped.
func (t *Task) CreatedBetween(ctx context.Context, start, end time.Time) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.CreatedBetween")
	defer span.End()

	span.SetAttributes(semconv.DBSystemMongoDB)

	cur, err := t.coll.Find(ctx,
		createdBetweenFilter(start, end),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "coll.Find")
	}
	defer cur.Close(ctx)

	res, skipped, err := decodeTasks(ctx, cur)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("tasks.skipped", skipped))

	return res, nil
}

func createdBetweenFilter(start, end time.Time) bson.M {
	const day = 24 * time.Hour

	return bson.M{
		"$or": bson.A{
			bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}},
			bson.M{"createdAt": bson.M{
				"$gte": start.UTC().Add(-day).Format("2006-01-02"),
				"$lt":  end.UTC().Add(day).Format("2006-01-02"),
			}},
			bson.M{"createdAt.seconds": bson.M{"$gte": start.Unix(), "$lt": end.Unix()}},
		},
	}
}

func decodeTasks(ctx context.Context, cur *mongo.Cursor) ([]internal.Task, int, error) {
	var (
		res     []internal.Task
		skipped int
	)

	for cur.Next(ctx) {
		var doc document
		if err := cur.Decode(&doc); err != nil {
			skipped++
			continue
		}

		res = append(res, convertDocument(doc))
	}

	if err := cur.Err(); err != nil {
		return nil, skipped, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "cur.Err")
	}

	return res, skipped, nil
}

// convertDocument maps a stored document to a Task. Priorities outside the enum read as
// PriorityNone and an unreadable createdAt leaves the Task undated.
func convertDocument(doc document) internal.Task {
	priority, _ := internal.ParsePriority(doc.Priority)

	res := internal.Task{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Priority:    priority,
		Status:      internal.Status(doc.Status),
		Photos:      doc.Photos,
		CreatedBy:   doc.CreatedBy,
	}

	if res.Photos == nil {
		res.Photos = []string{}
	}

	createdAt := doc.CreatedAt
	if d, ok := createdAt.(primitive.D); ok {
		createdAt = map[string]interface{}(d.Map())
	}

	res.CreatedAt, _ = internal.ParseCreatedAt(createdAt)

	return res
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemMongoDB)

	return span
}
