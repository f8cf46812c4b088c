package decimal

import "github.com/globalsign/mgo/bson"

// GetBSON implements bson.Getter, encoding x as a BSON Decimal128 via its
// canonical text form -- the same round trip cockroachdb/apd uses for
// its Decimal type in serialization.go.
func (x BigDecimal) GetBSON() (interface{}, error) {
	return bson.ParseDecimal128(x.String())
}

// SetBSON implements bson.Setter, decoding a BSON Decimal128 value back
// into x through ParseBigDecimal.
func (x *BigDecimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return err
	}
	v, err := ParseBigDecimal(w.String())
	if err != nil {
		return err
	}
	*x = v
	return nil
}
