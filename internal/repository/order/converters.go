package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB, items []LineItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:            o.ID,
		Status:        entities.OrderStatusType(o.Status),
		DriverID:      o.DriverID,
		LockedBy:      o.LockedBy,
		LockedAt:      o.LockedAt,
		LockExpiresAt: o.LockExpiresAt,
		Area:          o.Area,
		TotalCents:    o.TotalCents,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, item := range items {
			order.Items = append(order.Items, entities.LineItem{
				ProductID:  item.ProductID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				PriceCents: item.PriceCents,
			})
		}
	}

	return order
}

func ToLeaseDomain(l *LeaseDB) *entities.Lease {
	if l == nil {
		return nil
	}
	return &entities.Lease{
		OrderID:   l.OrderID,
		DriverID:  l.LockedBy,
		LockedAt:  l.LockedAt,
		ExpiresAt: l.ExpiresAt,
	}
}
