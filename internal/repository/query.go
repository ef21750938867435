package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kaanhvc/catalog-api/internal/domain"
)

// BuildProductQuery turns parsed listing parameters into a store filter and
// find options. Absent filters are omitted entirely; search is a single $or
// over name and description, not two AND'd conditions.
func BuildProductQuery(p domain.ListProductsParams) (bson.M, *options.FindOptions) {
	filter := bson.M{}

	if p.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": p.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": p.Search, "$options": "i"}},
		}
	}

	if p.Category != "" {
		// validated upstream, a parse failure cannot reach this point
		if oid, err := primitive.ObjectIDFromHex(p.Category); err == nil {
			filter["categoryId"] = oid
		}
	}

	if p.Status != "" {
		filter["status"] = p.Status
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	direction := -1
	if p.SortOrder == "asc" {
		direction = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: direction}}).
		SetSkip(int64(domain.Skip(p.Page, p.Limit))).
		SetLimit(int64(p.Limit))

	return filter, opts
}

// BuildCategoryQuery is the category counterpart: search only, fixed
// newest-first sort.
func BuildCategoryQuery(p domain.ListCategoriesParams) (bson.M, *options.FindOptions) {
	filter := bson.M{}

	if p.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": p.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": p.Search, "$options": "i"}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(domain.Skip(p.Page, p.Limit))).
		SetLimit(int64(p.Limit))

	return filter, opts
}
