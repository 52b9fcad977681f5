package mongodb

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var tDecimal = reflect.TypeOf(decimal.Decimal{})

// Registry devuelve el registry BSON de la aplicación: el de fábrica más el
// codec decimal.Decimal <-> Decimal128, para que los montos monetarios
// persistan sin pérdida de precisión (mismo criterio que el codec NUMERIC
// que se registra en el pool relacional de otros servicios).
func Registry() *bsoncodec.Registry {
	r := bson.NewRegistry()
	r.RegisterTypeEncoder(tDecimal, bsoncodec.ValueEncoderFunc(encodeDecimal))
	r.RegisterTypeDecoder(tDecimal, bsoncodec.ValueDecoderFunc(decodeDecimal))
	return r
}

func encodeDecimal(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tDecimal {
		return bsoncodec.ValueEncoderError{
			Name:     "DecimalEncodeValue",
			Types:    []reflect.Type{tDecimal},
			Received: val,
		}
	}
	dec := val.Interface().(decimal.Decimal)
	d128, err := primitive.ParseDecimal128(dec.String())
	if err != nil {
		return fmt.Errorf("decimal a Decimal128: %w", err)
	}
	return vw.WriteDecimal128(d128)
}

// decodeDecimal acepta Decimal128 y también los tipos numéricos que la
// aplicación escribió históricamente (double, int32, int64) o null.
func decodeDecimal(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tDecimal {
		return bsoncodec.ValueDecoderError{
			Name:     "DecimalDecodeValue",
			Types:    []reflect.Type{tDecimal},
			Received: val,
		}
	}

	var dec decimal.Decimal
	switch vr.Type() {
	case bsontype.Decimal128:
		d128, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		dec, err = decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("Decimal128 a decimal: %w", err)
		}
	case bsontype.Double:
		f, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		dec = decimal.NewFromFloat(f)
	case bsontype.Int32:
		i, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		dec = decimal.NewFromInt(int64(i))
	case bsontype.Int64:
		i, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		dec = decimal.NewFromInt(i)
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		dec, err = decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("string a decimal: %w", err)
		}
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		dec = decimal.Zero
	default:
		return fmt.Errorf("no se puede decodificar %v a decimal.Decimal", vr.Type())
	}

	val.Set(reflect.ValueOf(dec))
	return nil
}
