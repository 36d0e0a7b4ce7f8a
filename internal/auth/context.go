package auth

import (
	"context"

	"google.golang.org/grpc/metadata"
)

type contextKey string

const breweryIDKey contextKey = "brewery_id"

// MetadataBreweryID is the gRPC metadata key (and lower-cased HTTP header)
// carrying the tenant.
const MetadataBreweryID = "x-brewery-id"

func WithBreweryID(ctx context.Context, breweryID string) context.Context {
	return context.WithValue(ctx, breweryIDKey, breweryID)
}

// GetBreweryID returns the tenant set by the interceptor, falling back to
// incoming metadata.
func GetBreweryID(ctx context.Context) string {
	if val, ok := ctx.Value(breweryIDKey).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(MetadataBreweryID); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
