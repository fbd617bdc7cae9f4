package response

import (
	"time"

	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var errUnexpectedSource = errs.New("unexpected source type")

// copyOption flattens ids, timestamps and money into their wire forms.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, errUnexpectedSource
				}
				return id.String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src interface{}) (interface{}, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errUnexpectedSource
				}
				return t.Unix(), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errUnexpectedSource
				}
				return d.StringFixed(2), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		return errs.Wrap(err, "response mapping failed")
	}
	return nil
}

func unixOrNil(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}
