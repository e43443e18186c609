//go:build tools

// Пакет tools фиксирует инструменты генерации кода.
// Генераторы protoc ставятся вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.5.1
//
// после чего `go generate ./proto/...` пересобирает proto/orders/v1.
package tools
