package mongodb

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// looseInt decodes the numeric shapes found in imported datasets: int32,
// int64, double, and strings with a numeric prefix such as "2012è".
type looseInt int

func (i looseInt) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int(i))
}

func (i *looseInt) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*i = 0
	case bsontype.Int32:
		*i = looseInt(raw.Int32())
	case bsontype.Int64:
		*i = looseInt(raw.Int64())
	case bsontype.Double:
		*i = looseInt(raw.Double())
	case bsontype.String:
		s := strings.TrimSpace(raw.StringValue())
		end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
		if end >= 0 {
			s = s[:end]
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("mongodb: cannot decode %q as integer", raw.StringValue())
		}
		*i = looseInt(n)
	default:
		return fmt.Errorf("mongodb: cannot decode %s as integer", t)
	}
	return nil
}

// optionalString decodes strings and BSON dates. Dates are rendered as
// RFC 3339 in UTC. Valid is false when the field was absent or null, so an
// explicit "" survives a round trip.
type optionalString struct {
	Value string
	Valid bool
}

func newOptionalString(s *string) optionalString {
	if s == nil {
		return optionalString{}
	}
	return optionalString{Value: *s, Valid: true}
}

func (s optionalString) Ptr() *string {
	if !s.Valid {
		return nil
	}
	v := s.Value
	return &v
}

// IsZero makes omitempty skip unset values only.
func (s optionalString) IsZero() bool {
	return !s.Valid
}

func (s optionalString) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !s.Valid {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(s.Value)
}

func (s *optionalString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*s = optionalString{}
	case bsontype.String:
		*s = optionalString{Value: raw.StringValue(), Valid: true}
	case bsontype.DateTime:
		*s = optionalString{
			Value: time.UnixMilli(raw.DateTime()).UTC().Format(time.RFC3339),
			Valid: true,
		}
	default:
		return fmt.Errorf("mongodb: cannot decode %s as string", t)
	}
	return nil
}

// plainValue turns decoded BSON values into types encoding/json renders the
// way the driver's extended JSON would read to a client: ids as hex, dates
// as RFC 3339, nested documents as objects.
func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.M:
		return plainMap(val)
	case map[string]interface{}:
		return plainMap(val)
	case primitive.D:
		out := make(map[string]interface{}, len(val))
		for _, e := range val {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case primitive.A:
		return plainSlice(val)
	case []interface{}:
		return plainSlice(val)
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339)
	case primitive.Decimal128:
		return val.String()
	case primitive.Timestamp:
		return time.Unix(int64(val.T), 0).UTC().Format(time.RFC3339)
	case primitive.Null, primitive.Undefined:
		return nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	default:
		return v
	}
}

func plainMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainSlice(a []interface{}) []interface{} {
	out := make([]interface{}, len(a))
	for i, v := range a {
		out[i] = plainValue(v)
	}
	return out
}
