package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "ethicalfolio.v1.EthicalFolioService"

const (
	GetSectorRingMethod       = "/" + ServiceName + "/GetSectorRing"
	TransitionSelectionMethod = "/" + ServiceName + "/TransitionSelection"
	GetRiskDialMethod         = "/" + ServiceName + "/GetRiskDial"
	GetAudienceMatrixMethod   = "/" + ServiceName + "/GetAudienceMatrix"
)

// EthicalFolioServiceServer is the server API for the EthicalFolioService.
// Requests and responses are google.protobuf.Struct documents.
type EthicalFolioServiceServer interface {
	GetSectorRing(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TransitionSelection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRiskDial(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAudienceMatrix(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(EthicalFolioServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EthicalFolioServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(EthicalFolioServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EthicalFolioServiceDesc is the grpc.ServiceDesc for the EthicalFolioService
var EthicalFolioServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EthicalFolioServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSectorRing",
			Handler: unaryHandler(GetSectorRingMethod, func(s EthicalFolioServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.GetSectorRing(ctx, in)
			}),
		},
		{
			MethodName: "TransitionSelection",
			Handler: unaryHandler(TransitionSelectionMethod, func(s EthicalFolioServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.TransitionSelection(ctx, in)
			}),
		},
		{
			MethodName: "GetRiskDial",
			Handler: unaryHandler(GetRiskDialMethod, func(s EthicalFolioServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.GetRiskDial(ctx, in)
			}),
		},
		{
			MethodName: "GetAudienceMatrix",
			Handler: unaryHandler(GetAudienceMatrixMethod, func(s EthicalFolioServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.GetAudienceMatrix(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ethicalfolio/v1/ethicalfolio.proto",
}

// RegisterEthicalFolioServiceServer registers srv on s
func RegisterEthicalFolioServiceServer(s grpc.ServiceRegistrar, srv EthicalFolioServiceServer) {
	s.RegisterService(&EthicalFolioServiceDesc, srv)
}

// Client is a thin client for the EthicalFolioService
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSectorRing(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetSectorRingMethod, in, opts...)
}

func (c *Client) TransitionSelection(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TransitionSelectionMethod, in, opts...)
}

func (c *Client) GetRiskDial(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetRiskDialMethod, in, opts...)
}

func (c *Client) GetAudienceMatrix(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetAudienceMatrixMethod, in, opts...)
}
