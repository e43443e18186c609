// Package ordersv1 содержит сгенерированный gRPC API сервиса заказов.
package ordersv1

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative proto/orders/v1/order_service.proto
