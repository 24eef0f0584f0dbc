package pb

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File_bmi_v1_bmi_proto is the descriptor of bmi.proto. It is built and
// registered at init so gRPC server reflection can describe the service.
var File_bmi_v1_bmi_proto protoreflect.FileDescriptor

func init() {
	structType := proto.String(".google.protobuf.Struct")
	method := func(name string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  structType,
			OutputType: structType,
		}
	}

	fdp := &descriptorpb.FileDescriptorProto{
		Name:       proto.String("bmi/v1/bmi.proto"),
		Package:    proto.String("bmi.v1"),
		Dependency: []string{"google/protobuf/struct.proto"},
		Syntax:     proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/AnjanaVP231/BMI-Calculator/pkg/pb"),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name:   proto.String("BMIService"),
			Method: []*descriptorpb.MethodDescriptorProto{method("Evaluate"), method("Validate")},
		}},
	}

	fd, err := protodesc.NewFile(fdp, protoregistry.GlobalFiles)
	if err != nil {
		panic("pb: building bmi.proto descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("pb: registering bmi.proto descriptor: " + err.Error())
	}
	File_bmi_v1_bmi_proto = fd
}
