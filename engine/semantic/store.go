// Package semantic is the sole owner of all Qdrant operations: collection
// management, batched upserts, and k-NN search over restaurant vectors.
package semantic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
)

// pointsAPI is the slice of pb.PointsClient the store uses.
type pointsAPI interface {
	Upsert(ctx context.Context, in *pb.UpsertPoints, opts ...grpc.CallOption) (*pb.PointsOperationResponse, error)
	Search(ctx context.Context, in *pb.SearchPoints, opts ...grpc.CallOption) (*pb.SearchResponse, error)
}

// collectionsAPI is the slice of pb.CollectionsClient the store uses.
type collectionsAPI interface {
	List(ctx context.Context, in *pb.ListCollectionsRequest, opts ...grpc.CallOption) (*pb.ListCollectionsResponse, error)
	Create(ctx context.Context, in *pb.CreateCollection, opts ...grpc.CallOption) (*pb.CollectionOperationResponse, error)
}

// VectorStore stores restaurant vectors in a single Qdrant collection.
type VectorStore struct {
	conn        *grpc.ClientConn
	points      pointsAPI
	collections collectionsAPI
	collection  string
}

// New creates a VectorStore connected to Qdrant at the given gRPC address.
func New(addr string, collection string) (*VectorStore, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("semantic: dial qdrant %s: %w", addr, err)
	}
	return &VectorStore{
		conn:        conn,
		points:      pb.NewPointsClient(conn),
		collections: pb.NewCollectionsClient(conn),
		collection:  collection,
	}, nil
}

// NewWithClients builds a VectorStore over injected clients. Used by tests.
func NewWithClients(points pointsAPI, collections collectionsAPI, collection string) *VectorStore {
	return &VectorStore{points: points, collections: collections, collection: collection}
}

// Close closes the underlying gRPC connection.
func (v *VectorStore) Close() error {
	if v.conn == nil {
		return nil
	}
	return v.conn.Close()
}

// EnsureCollection creates the collection (cosine distance) if it doesn't exist.
func (v *VectorStore) EnsureCollection(ctx context.Context, dims int) error {
	list, err := v.collections.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return fmt.Errorf("semantic: list collections: %w", err)
	}
	for _, c := range list.GetCollections() {
		if c.GetName() == v.collection {
			return nil
		}
	}

	d := uint64(dims)
	_, err = v.collections.Create(ctx, &pb.CreateCollection{
		CollectionName: v.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     d,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("semantic: create collection %s: %w", v.collection, err)
	}
	return nil
}

// PointID converts a restaurant id into the deterministic UUID Qdrant
// requires as a point id. Re-upserting the same restaurant id always maps to
// the same point, which is what gives upserts last-write-wins semantics.
func PointID(id string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("restaurant:"+id)).String()
}

// Upsert writes records into Qdrant in one batched call and returns the
// number of points written. The full restaurant record travels as payload so
// search hits come back with structured fields, not just the embedded text.
func (v *VectorStore) Upsert(ctx context.Context, records []VectorRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	points := make([]*pb.PointStruct, len(records))
	for i, r := range records {
		payload, err := restaurantPayload(r.Payload)
		if err != nil {
			return 0, fmt.Errorf("semantic: payload for %s: %w", r.ID, err)
		}
		points[i] = &pb.PointStruct{
			Id: &pb.PointId{
				PointIdOptions: &pb.PointId_Uuid{Uuid: PointID(r.ID)},
			},
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{
					Vector: &pb.Vector{Data: r.Embedding},
				},
			},
			Payload: payload,
		}
	}

	wait := true
	_, err := v.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: v.collection,
		Wait:           &wait,
		Points:         points,
	})
	if err != nil {
		return 0, fmt.Errorf("semantic: upsert %d points: %w", len(records), err)
	}
	return len(points), nil
}

// Search performs k-NN similarity search with payload included. Results come
// back ranked by descending similarity, at most topK of them.
func (v *VectorStore) Search(ctx context.Context, embedding []float32, topK int) ([]SearchResult, error) {
	resp, err := v.points.Search(ctx, &pb.SearchPoints{
		CollectionName: v.collection,
		Vector:         embedding,
		Limit:          uint64(topK),
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("semantic: search: %w", err)
	}

	results := make([]SearchResult, len(resp.GetResult()))
	for i, hit := range resp.GetResult() {
		rest, err := restaurantFromPayload(hit.GetPayload())
		if err != nil {
			return nil, fmt.Errorf("semantic: decode hit payload: %w", err)
		}
		results[i] = SearchResult{
			ID:         rest.ID.String(),
			Score:      hit.GetScore(),
			Restaurant: rest,
		}
	}
	return results, nil
}

// restaurantPayload converts a restaurant record into Qdrant payload values.
func restaurantPayload(r domain.Restaurant) (map[string]*pb.Value, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	payload := make(map[string]*pb.Value, len(fields))
	for k, val := range fields {
		payload[k] = toValue(val)
	}
	return payload, nil
}

// restaurantFromPayload rebuilds the restaurant record stored in a hit.
func restaurantFromPayload(payload map[string]*pb.Value) (domain.Restaurant, error) {
	fields := make(map[string]any, len(payload))
	for k, val := range payload {
		fields[k] = fromValue(val)
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return domain.Restaurant{}, err
	}
	var r domain.Restaurant
	if err := json.Unmarshal(data, &r); err != nil {
		return domain.Restaurant{}, err
	}
	return r, nil
}

// toValue maps a decoded JSON value onto the qdrant value union.
func toValue(val any) *pb.Value {
	switch tv := val.(type) {
	case nil:
		return &pb.Value{Kind: &pb.Value_NullValue{NullValue: pb.NullValue_NULL_VALUE}}
	case string:
		return &pb.Value{Kind: &pb.Value_StringValue{StringValue: tv}}
	case bool:
		return &pb.Value{Kind: &pb.Value_BoolValue{BoolValue: tv}}
	case float64:
		return &pb.Value{Kind: &pb.Value_DoubleValue{DoubleValue: tv}}
	case []any:
		items := make([]*pb.Value, len(tv))
		for i, item := range tv {
			items[i] = toValue(item)
		}
		return &pb.Value{Kind: &pb.Value_ListValue{ListValue: &pb.ListValue{Values: items}}}
	case map[string]any:
		fields := make(map[string]*pb.Value, len(tv))
		for k, item := range tv {
			fields[k] = toValue(item)
		}
		return &pb.Value{Kind: &pb.Value_StructValue{StructValue: &pb.Struct{Fields: fields}}}
	default:
		return &pb.Value{Kind: &pb.Value_StringValue{StringValue: fmt.Sprint(tv)}}
	}
}

// fromValue is the inverse of toValue.
func fromValue(val *pb.Value) any {
	switch kind := val.GetKind().(type) {
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_ListValue:
		items := make([]any, len(kind.ListValue.GetValues()))
		for i, item := range kind.ListValue.GetValues() {
			items[i] = fromValue(item)
		}
		return items
	case *pb.Value_StructValue:
		fields := make(map[string]any, len(kind.StructValue.GetFields()))
		for k, item := range kind.StructValue.GetFields() {
			fields[k] = fromValue(item)
		}
		return fields
	default:
		return nil
	}
}
