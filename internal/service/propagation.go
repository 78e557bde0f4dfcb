package service

import "github.com/d60-Lab/mock-oms/internal/model"

// orderStatusOnShipmentCreated 新建发货单时订单状态的推进：仅 PREPARING / PACKING -> SHIPPED
func orderStatusOnShipmentCreated(current model.OrderStatus) (model.OrderStatus, bool) {
	if current == model.OrderStatusPreparing || current == model.OrderStatusPacking {
		return model.OrderStatusShipped, true
	}
	return current, false
}

// orderStatusOnShipmentUpdated 发货单状态变更后订单应处的状态。
// all 为该订单全部发货单（含本次更新后的状态）。
//   - OUT_FOR_DELIVERY: 无论当前状态，订单进入 IN_DELIVERY
//   - DELIVERED: 所有发货单均已送达/签收时订单进入 DELIVERED
//   - 其他: 不变
func orderStatusOnShipmentUpdated(current model.OrderStatus, updated model.ShipmentStatus, all []model.ShipmentStatus) (model.OrderStatus, bool) {
	switch updated {
	case model.ShipmentStatusOutForDelivery:
		return model.OrderStatusInDelivery, true
	case model.ShipmentStatusDelivered:
		for _, st := range all {
			if !st.Finished() {
				return current, false
			}
		}
		return model.OrderStatusDelivered, true
	}
	return current, false
}
