package hike

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	familiesCollection = "families"
	hikesCollection    = "hikes"
)

// FirestoreRepository persists hikes under families/{familyID}/hikes.
type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) hikes(familyID string) *firestore.CollectionRef {
	return r.client.Collection(familiesCollection).Doc(familyID).Collection(hikesCollection)
}

type hikeDoc struct {
	FamilyID       string    `firestore:"family_id"`
	Date           time.Time `firestore:"date"`
	Distance       float64   `firestore:"distance"`
	ElevationGain  float64   `firestore:"elevation_gain"`
	Location       string    `firestore:"location"`
	Difficulty     string    `firestore:"difficulty"`
	Notes          string    `firestore:"notes"`
	LoggedByUserID string    `firestore:"logged_by_user_id"`
	CreatedAt      time.Time `firestore:"created_at"`
	UpdatedAt      time.Time `firestore:"updated_at"`
}

func toDoc(rec Record) hikeDoc {
	return hikeDoc{
		FamilyID:       rec.FamilyID,
		Date:           rec.Date,
		Distance:       rec.Distance,
		ElevationGain:  rec.ElevationGain,
		Location:       rec.Location,
		Difficulty:     rec.Difficulty,
		Notes:          rec.Notes,
		LoggedByUserID: rec.LoggedByUserID,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func fromDoc(id string, doc hikeDoc) Record {
	return Record{
		ID:             id,
		FamilyID:       doc.FamilyID,
		Date:           doc.Date,
		Distance:       doc.Distance,
		ElevationGain:  doc.ElevationGain,
		Location:       doc.Location,
		Difficulty:     doc.Difficulty,
		Notes:          doc.Notes,
		LoggedByUserID: doc.LoggedByUserID,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func (r *FirestoreRepository) Create(ctx context.Context, record Record) error {
	_, err := r.hikes(record.FamilyID).Doc(record.ID).Create(ctx, toDoc(record))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("%w: %s", ErrConflict, record.ID)
		}
		return fmt.Errorf("creating hike: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) GetByID(ctx context.Context, familyID, hikeID string) (Record, error) {
	snap, err := r.hikes(familyID).Doc(hikeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, hikeID)
		}
		return Record{}, fmt.Errorf("getting hike: %w", err)
	}

	var doc hikeDoc
	if err := snap.DataTo(&doc); err != nil {
		return Record{}, fmt.Errorf("decoding hike %s: %w", hikeID, err)
	}
	return fromDoc(snap.Ref.ID, doc), nil
}

func (r *FirestoreRepository) Update(ctx context.Context, familyID, hikeID string, updates UpdateInput, updatedAt time.Time) (Record, error) {
	ref := r.hikes(familyID).Doc(hikeID)

	var updated Record
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s", ErrNotFound, hikeID)
			}
			return err
		}

		var doc hikeDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("decoding hike %s: %w", hikeID, err)
		}

		if updates.Date != nil {
			doc.Date = *updates.Date
		}
		if updates.Distance != nil {
			doc.Distance = *updates.Distance
		}
		if updates.ElevationGain != nil {
			doc.ElevationGain = *updates.ElevationGain
		}
		if updates.Location != nil {
			doc.Location = *updates.Location
		}
		if updates.Difficulty != nil {
			doc.Difficulty = *updates.Difficulty
		}
		if updates.Notes != nil {
			doc.Notes = *updates.Notes
		}
		doc.UpdatedAt = updatedAt

		updated = fromDoc(hikeID, doc)
		return tx.Set(ref, doc)
	})
	if err != nil {
		return Record{}, err
	}
	return updated, nil
}

func (r *FirestoreRepository) Delete(ctx context.Context, familyID, hikeID string) error {
	ref := r.hikes(familyID).Doc(hikeID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s", ErrNotFound, hikeID)
			}
			return err
		}
		return tx.Delete(ref)
	})
}

func (r *FirestoreRepository) ListByFamily(ctx context.Context, familyID string) ([]Record, error) {
	iter := r.hikes(familyID).OrderBy("date", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var records []Record
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing hikes: %w", err)
		}

		var doc hikeDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decoding hike %s: %w", snap.Ref.ID, err)
		}
		records = append(records, fromDoc(snap.Ref.ID, doc))
	}
	return records, nil
}
