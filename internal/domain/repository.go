package domain

import "context"

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create атомарно сохраняет заказ вместе с позициями: либо все строки, либо ничего.
	Create(ctx context.Context, order Order) (Order, error)
	// Get возвращает заказ с позициями или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id string) (Order, error)
	// ListPage возвращает страницу заказов без позиций и общее число подходящих записей.
	ListPage(ctx context.Context, filter OrderFilter, offset, limit int) ([]Order, int, error)
	// UpdateStatus меняет статус заказа (last write wins) и возвращает обновлённый заказ.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (Order, error)
}
