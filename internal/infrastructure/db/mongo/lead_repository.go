package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

const collectionLeads = "leads"

type LeadRepository struct {
	col *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{col: db.Collection(collectionLeads)}
}

type mongoLead struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ContactName  string             `bson:"contact_name"`
	ContactEmail string             `bson:"contact_email"`
	CompanyName  string             `bson:"company_name"`
	Status       string             `bson:"status"`
	Manager      primitive.ObjectID `bson:"manager"`
	Notes        []string           `bson:"notes"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (ml *mongoLead) toDomain() *domain.Lead {
	notes := ml.Notes
	if notes == nil {
		notes = []string{}
	}
	return &domain.Lead{
		ID:           ml.ID.Hex(),
		ContactName:  ml.ContactName,
		ContactEmail: ml.ContactEmail,
		CompanyName:  ml.CompanyName,
		Status:       domain.LeadStatus(ml.Status),
		ManagerID:    ml.Manager.Hex(),
		Notes:        notes,
		CreatedAt:    ml.CreatedAt,
		UpdatedAt:    ml.UpdatedAt,
	}
}

// Create inserts a new lead document.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	managerOID, err := primitive.ObjectIDFromHex(lead.ManagerID)
	if err != nil {
		return nil, domain.ErrInvalidManager
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoLead{
		ContactName:  lead.ContactName,
		ContactEmail: lead.ContactEmail,
		CompanyName:  lead.CompanyName,
		Status:       string(lead.Status),
		Manager:      managerOID,
		Notes:        lead.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if doc.Notes == nil {
		doc.Notes = []string{}
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeadNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoLead
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *LeadRepository) List(ctx context.Context, filter ports.LeadFilter) ([]domain.Lead, error) {
	match := bson.M{}
	if filter.ManagerID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.ManagerID)
		if err != nil {
			// An unparseable manager id can match nothing.
			return []domain.Lead{}, nil
		}
		match["manager"] = oid
	}
	if filter.Status != "" {
		match["status"] = string(filter.Status)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, match, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	leads := []domain.Lead{}
	for cur.Next(ctx) {
		var ml mongoLead
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, *ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return leads, nil
}

// Update applies the patch in a single FindOneAndUpdate and returns the
// post-image. A note append uses $push so two racing appends both land;
// everything else is last-writer-wins by design.
func (r *LeadRepository) Update(ctx context.Context, id string, patch ports.LeadPatch) (*domain.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeadNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.ContactName != "" {
		set["contact_name"] = patch.ContactName
	}
	if patch.ContactEmail != "" {
		set["contact_email"] = patch.ContactEmail
	}
	if patch.CompanyName != "" {
		set["company_name"] = patch.CompanyName
	}
	if patch.Status != "" {
		set["status"] = string(patch.Status)
	}
	if patch.ManagerID != "" {
		managerOID, err := primitive.ObjectIDFromHex(patch.ManagerID)
		if err != nil {
			return nil, domain.ErrInvalidManager
		}
		set["manager"] = managerOID
	}
	if patch.ReplaceNotes != nil {
		set["notes"] = patch.ReplaceNotes
	}

	update := bson.M{"$set": set}
	if patch.AppendNote != "" {
		update["$push"] = bson.M{"notes": patch.AppendNote}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoLead
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLeadNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) CountByManager(ctx context.Context, managerID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(managerID)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"manager": oid})
	if err != nil {
		return 0, fmt.Errorf("count leads by manager: %w", err)
	}
	return n, nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context, statuses ...domain.LeadStatus) (int64, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"status": bson.M{"$in": values}})
	if err != nil {
		return 0, fmt.Errorf("count leads by status: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the lookup indexes on the leads collection.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "manager", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
