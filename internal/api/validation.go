package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/mock-oms/internal/model"
)

// registerValidators 注册枚举校验：order_status / shipment_status / claim_type
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	rules := map[string]validator.Func{
		"order_status": func(fl validator.FieldLevel) bool {
			return model.OrderStatus(fl.Field().String()).Valid()
		},
		"shipment_status": func(fl validator.FieldLevel) bool {
			return model.ShipmentStatus(fl.Field().String()).Valid()
		},
		"claim_type": func(fl validator.FieldLevel) bool {
			return model.ClaimType(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
