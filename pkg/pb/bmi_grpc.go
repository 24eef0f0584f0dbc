package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Written by hand in the shape of protoc-gen-go-grpc output for bmi.proto.
// Both methods use google.protobuf.Struct; the file descriptor is registered
// in bmi_proto.go.

const (
	BMIService_Evaluate_FullMethodName = "/bmi.v1.BMIService/Evaluate"
	BMIService_Validate_FullMethodName = "/bmi.v1.BMIService/Validate"
)

// BMIServiceClient is the client API for BMIService
type BMIServiceClient interface {
	// Evaluate validates the measurement and returns the age-adjusted advice
	Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Validate reports per-field errors without evaluating
	Validate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type bmiServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBMIServiceClient wraps a connection
func NewBMIServiceClient(cc grpc.ClientConnInterface) BMIServiceClient {
	return &bmiServiceClient{cc}
}

func (c *bmiServiceClient) Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BMIService_Evaluate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bmiServiceClient) Validate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BMIService_Validate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BMIServiceServer is the server API for BMIService.
// Implementations must embed UnimplementedBMIServiceServer.
type BMIServiceServer interface {
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Validate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedBMIServiceServer()
}

// UnimplementedBMIServiceServer must be embedded for forward compatibility
type UnimplementedBMIServiceServer struct{}

func (UnimplementedBMIServiceServer) Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Evaluate not implemented")
}

func (UnimplementedBMIServiceServer) Validate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Validate not implemented")
}

func (UnimplementedBMIServiceServer) mustEmbedUnimplementedBMIServiceServer() {}

// RegisterBMIServiceServer registers srv with a gRPC server
func RegisterBMIServiceServer(s grpc.ServiceRegistrar, srv BMIServiceServer) {
	s.RegisterService(&BMIService_ServiceDesc, srv)
}

func _BMIService_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BMIServiceServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BMIService_Evaluate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BMIServiceServer).Evaluate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _BMIService_Validate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BMIServiceServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BMIService_Validate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BMIServiceServer).Validate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// BMIService_ServiceDesc is the grpc.ServiceDesc for BMIService
var BMIService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bmi.v1.BMIService",
	HandlerType: (*BMIServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    _BMIService_Evaluate_Handler,
		},
		{
			MethodName: "Validate",
			Handler:    _BMIService_Validate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bmi/v1/bmi.proto",
}
