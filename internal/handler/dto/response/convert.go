package response

import (
	"fleetdesk/internal/domain/reservation"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: reservation.Money{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(reservation.Money).Cents(), nil
			},
		},
	},
}

// mustCopy only fails on mismatched shapes, which is a programming error.
func mustCopy(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic(err)
	}
}
