package shared

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"primecm/shared/cache"
	"primecm/shared/constant"
	"primecm/shared/dto"
	"primecm/shared/timezone"
	"reflect"
	"slices"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheVersionKeyPrefix = "version:"

// TransformFields converts the non-zero `db` fields of a struct into a column map
// for an UPDATE. Pointer fields are dereferenced; nil pointers are skipped. The
// modified_at / modified_by pair is always set.
func TransformFields(data any, username string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		updatedFields[fieldName] = reflect.Indirect(field).Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from the ordering and the bound
// filter values, so equal searches share one cache entry.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	_, args := filter.GetWhereClause()

	parts := []string{params.SortBy, params.SortDir}

	for _, key := range slices.Sorted(maps.Keys(args)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, args[key]))
	}

	return BuildCacheKey(prefix, parts...)
}

// CacheGeneration returns prefix tagged with its current generation. ok is
// false when the generation cannot be read; the cache must then be bypassed.
func CacheGeneration(ctx context.Context, redisCache cache.RedisCache, prefix string) (string, bool) {
	gen, err := redisCache.Version(ctx, cacheVersionKeyPrefix+prefix)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to read cache generation")

		return prefix, false
	}

	return fmt.Sprintf("%s:v%d", prefix, gen), true
}

// InvalidateCaches moves prefix to a new generation and drops its entries.
// Entries saved later under an older generation are never read again.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if _, err := redisCache.Incr(ctx, cacheVersionKeyPrefix+prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to bump cache generation")
	}

	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == constant.PqErrorCodeUniqueViolation
	}

	return false
}
