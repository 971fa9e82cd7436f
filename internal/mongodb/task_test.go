package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sanLimbu/taskphotos/internal"
)

func TestConvertDocument(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt interface{}
		dated     bool
	}{
		{"native", primitive.NewDateTimeFromTime(createdAt), true},
		{"string", "2024-02-10T08:00:00Z", true},
		{"seconds document", primitive.D{{Key: "seconds", Value: createdAt.Unix()}}, true},
		{"missing", nil, false},
		{"garbage", "soon", false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := convertDocument(document{
				ID:        primitive.NewObjectID(),
				Title:     "Paint shed",
				Priority:  "Medium",
				Status:    "Finished",
				CreatedAt: tt.createdAt,
			})

			assert.Equal(t, internal.PriorityMedium, res.Priority)
			assert.Equal(t, internal.StatusFinished, res.Status)
			assert.Equal(t, []string{}, res.Photos)
			assert.Equal(t, tt.dated, !res.CreatedAt.IsZero())

			if tt.dated {
				assert.True(t, createdAt.Equal(res.CreatedAt))
			}
		})
	}
}

func TestDocumentDecoding(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	createdAt := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)

	raw, err := bson.Marshal(bson.M{
		"_id":       id,
		"title":     "Paint shed",
		"priority":  "High",
		"status":    "Pending",
		"photos":    bson.A{"https://cdn.example.com/x.jpg"},
		"createdBy": nil,
		"createdAt": createdAt,
	})
	require.NoError(t, err)

	var doc document
	require.NoError(t, bson.Unmarshal(raw, &doc))

	res := convertDocument(doc)

	assert.Equal(t, id.Hex(), res.ID)
	assert.Nil(t, res.CreatedBy)
	assert.Equal(t, []string{"https://cdn.example.com/x.jpg"}, res.Photos)
	assert.True(t, createdAt.Equal(res.CreatedAt))
}

func TestConvertDocument_UnknownPriority(t *testing.T) {
	t.Parallel()

	res := convertDocument(document{
		ID:        primitive.NewObjectID(),
		Title:     "Paint shed",
		Priority:  "Urgent",
		Status:    "Finished",
		CreatedAt: primitive.NewDateTimeFromTime(time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)),
	})

	assert.Equal(t, internal.PriorityNone, res.Priority)
	assert.Equal(t, internal.StatusFinished, res.Status)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestDecodeTasks_SkipsUndecodable(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)

	cur, err := mongo.NewCursorFromDocuments([]interface{}{
		bson.M{"_id": primitive.NewObjectID(), "title": 42, "priority": "Low", "status": "Finished", "createdAt": createdAt},
		bson.M{"_id": primitive.NewObjectID(), "title": "Urgent one", "priority": "Urgent", "status": "Finished", "createdAt": createdAt},
		bson.M{"_id": primitive.NewObjectID(), "title": "Low one", "priority": "Low", "status": "Pending", "createdAt": "2024-02-11 09:00:00"},
	}, nil, nil)
	require.NoError(t, err)

	tasks, skipped, err := decodeTasks(context.Background(), cur)
	require.NoError(t, err)

	assert.Equal(t, 1, skipped)
	require.Len(t, tasks, 2)

	assert.Equal(t, internal.PriorityNone, tasks[0].Priority)
	assert.Equal(t, internal.PriorityLow, tasks[1].Priority)
	assert.Equal(t, time.Date(2024, time.February, 11, 9, 0, 0, 0, time.UTC), tasks[1].CreatedAt)

	start, end := internal.MonthWindow(createdAt)
	report := internal.Aggregate(tasks, start, end)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Finished)
}

func TestCreatedBetweenFilter(t *testing.T) {
	t.Parallel()

	start, end := internal.MonthWindow(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))

	or, ok := createdBetweenFilter(start, end)["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	assert.Equal(t, bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}, or[0])
	assert.Equal(t, bson.M{"createdAt": bson.M{"$gte": "2024-01-31", "$lt": "2024-03-02"}}, or[1])
	assert.Equal(t, bson.M{"createdAt.seconds": bson.M{"$gte": start.Unix(), "$lt": end.Unix()}}, or[2])

	// Strings written by other clients compare inside the bounds.
	for _, s := range []string{"2024-02-01 10:00:00", "2024-02-01T00:00:00Z", "2024-02-29T23:59:59.999Z"} {
		assert.True(t, s >= "2024-01-31" && s < "2024-03-02", s)
	}
}
