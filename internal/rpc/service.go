package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "carddetail.v1.CardDetail"

const (
	deriveMethod = "/" + ServiceName + "/Derive"
	lookupMethod = "/" + ServiceName + "/Lookup"
)

// CardDetailServer serves card detail views. Requests and responses are
// google.protobuf.Struct so the view schema can grow without regenerating code.
//
// Derive request: {"card": <card record>, "tier": 0|1|2}
// Lookup request: {"id": <game id>, "tier": 0|1|2}
type CardDetailServer interface {
	Derive(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Lookup(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterCardDetailServer registers srv on s.
func RegisterCardDetailServer(s grpc.ServiceRegistrar, srv CardDetailServer) {
	s.RegisterService(&cardDetailServiceDesc, srv)
}

var cardDetailServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CardDetailServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Derive", Handler: deriveHandler},
		{MethodName: "Lookup", Handler: lookupHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "carddetail/v1/carddetail.proto",
}

func deriveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardDetailServer).Derive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: deriveMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardDetailServer).Derive(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func lookupHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardDetailServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: lookupMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardDetailServer).Lookup(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
