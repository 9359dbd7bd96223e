// Reasoning sidecar contract. The engine treats reasoning as an opaque
// service with six typed operations; prompt engineering lives on the
// other side of this boundary.
//
// Generate with:
//   protoc --go_out=. --go-grpc_out=. proto/reasoning.proto

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: proto/reasoning.proto

package reasoningv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ReasoningService_AnalyzeContext_FullMethodName       = "/reasoning.v1.ReasoningService/AnalyzeContext"
	ReasoningService_DevelopStrategy_FullMethodName      = "/reasoning.v1.ReasoningService/DevelopStrategy"
	ReasoningService_AnalyzeCompetitors_FullMethodName   = "/reasoning.v1.ReasoningService/AnalyzeCompetitors"
	ReasoningService_PlanCampaign_FullMethodName         = "/reasoning.v1.ReasoningService/PlanCampaign"
	ReasoningService_GenerateDailyContent_FullMethodName = "/reasoning.v1.ReasoningService/GenerateDailyContent"
	ReasoningService_AnalyzeOutcome_FullMethodName       = "/reasoning.v1.ReasoningService/AnalyzeOutcome"
)

// ReasoningServiceClient is the client API for ReasoningService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReasoningServiceClient interface {
	AnalyzeContext(ctx context.Context, in *AnalyzeContextRequest, opts ...grpc.CallOption) (*AnalyzeContextResponse, error)
	DevelopStrategy(ctx context.Context, in *DevelopStrategyRequest, opts ...grpc.CallOption) (*DevelopStrategyResponse, error)
	AnalyzeCompetitors(ctx context.Context, in *AnalyzeCompetitorsRequest, opts ...grpc.CallOption) (*AnalyzeCompetitorsResponse, error)
	PlanCampaign(ctx context.Context, in *PlanCampaignRequest, opts ...grpc.CallOption) (*PlanCampaignResponse, error)
	GenerateDailyContent(ctx context.Context, in *GenerateDailyContentRequest, opts ...grpc.CallOption) (*GenerateDailyContentResponse, error)
	AnalyzeOutcome(ctx context.Context, in *AnalyzeOutcomeRequest, opts ...grpc.CallOption) (*AnalyzeOutcomeResponse, error)
}

type reasoningServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReasoningServiceClient(cc grpc.ClientConnInterface) ReasoningServiceClient {
	return &reasoningServiceClient{cc}
}

func (c *reasoningServiceClient) AnalyzeContext(ctx context.Context, in *AnalyzeContextRequest, opts ...grpc.CallOption) (*AnalyzeContextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeContextResponse)
	err := c.cc.Invoke(ctx, ReasoningService_AnalyzeContext_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reasoningServiceClient) DevelopStrategy(ctx context.Context, in *DevelopStrategyRequest, opts ...grpc.CallOption) (*DevelopStrategyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DevelopStrategyResponse)
	err := c.cc.Invoke(ctx, ReasoningService_DevelopStrategy_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reasoningServiceClient) AnalyzeCompetitors(ctx context.Context, in *AnalyzeCompetitorsRequest, opts ...grpc.CallOption) (*AnalyzeCompetitorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeCompetitorsResponse)
	err := c.cc.Invoke(ctx, ReasoningService_AnalyzeCompetitors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reasoningServiceClient) PlanCampaign(ctx context.Context, in *PlanCampaignRequest, opts ...grpc.CallOption) (*PlanCampaignResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PlanCampaignResponse)
	err := c.cc.Invoke(ctx, ReasoningService_PlanCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reasoningServiceClient) GenerateDailyContent(ctx context.Context, in *GenerateDailyContentRequest, opts ...grpc.CallOption) (*GenerateDailyContentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateDailyContentResponse)
	err := c.cc.Invoke(ctx, ReasoningService_GenerateDailyContent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reasoningServiceClient) AnalyzeOutcome(ctx context.Context, in *AnalyzeOutcomeRequest, opts ...grpc.CallOption) (*AnalyzeOutcomeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeOutcomeResponse)
	err := c.cc.Invoke(ctx, ReasoningService_AnalyzeOutcome_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReasoningServiceServer is the server API for ReasoningService service.
// All implementations must embed UnimplementedReasoningServiceServer
// for forward compatibility.
type ReasoningServiceServer interface {
	AnalyzeContext(context.Context, *AnalyzeContextRequest) (*AnalyzeContextResponse, error)
	DevelopStrategy(context.Context, *DevelopStrategyRequest) (*DevelopStrategyResponse, error)
	AnalyzeCompetitors(context.Context, *AnalyzeCompetitorsRequest) (*AnalyzeCompetitorsResponse, error)
	PlanCampaign(context.Context, *PlanCampaignRequest) (*PlanCampaignResponse, error)
	GenerateDailyContent(context.Context, *GenerateDailyContentRequest) (*GenerateDailyContentResponse, error)
	AnalyzeOutcome(context.Context, *AnalyzeOutcomeRequest) (*AnalyzeOutcomeResponse, error)
	mustEmbedUnimplementedReasoningServiceServer()
}

// UnimplementedReasoningServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReasoningServiceServer struct{}

func (UnimplementedReasoningServiceServer) AnalyzeContext(context.Context, *AnalyzeContextRequest) (*AnalyzeContextResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeContext not implemented")
}
func (UnimplementedReasoningServiceServer) DevelopStrategy(context.Context, *DevelopStrategyRequest) (*DevelopStrategyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DevelopStrategy not implemented")
}
func (UnimplementedReasoningServiceServer) AnalyzeCompetitors(context.Context, *AnalyzeCompetitorsRequest) (*AnalyzeCompetitorsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeCompetitors not implemented")
}
func (UnimplementedReasoningServiceServer) PlanCampaign(context.Context, *PlanCampaignRequest) (*PlanCampaignResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlanCampaign not implemented")
}
func (UnimplementedReasoningServiceServer) GenerateDailyContent(context.Context, *GenerateDailyContentRequest) (*GenerateDailyContentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateDailyContent not implemented")
}
func (UnimplementedReasoningServiceServer) AnalyzeOutcome(context.Context, *AnalyzeOutcomeRequest) (*AnalyzeOutcomeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeOutcome not implemented")
}
func (UnimplementedReasoningServiceServer) mustEmbedUnimplementedReasoningServiceServer() {}
func (UnimplementedReasoningServiceServer) testEmbeddedByValue()                          {}

// UnsafeReasoningServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReasoningServiceServer will
// result in compilation errors.
type UnsafeReasoningServiceServer interface {
	mustEmbedUnimplementedReasoningServiceServer()
}

func RegisterReasoningServiceServer(s grpc.ServiceRegistrar, srv ReasoningServiceServer) {
	// If the following call panics, it indicates UnimplementedReasoningServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReasoningService_ServiceDesc, srv)
}

func _ReasoningService_AnalyzeContext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeContextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReasoningServiceServer).AnalyzeContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReasoningService_AnalyzeContext_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReasoningServiceServer).AnalyzeContext(ctx, req.(*AnalyzeContextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReasoningService_DevelopStrategy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DevelopStrategyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReasoningServiceServer).DevelopStrategy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReasoningService_DevelopStrategy_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReasoningServiceServer).DevelopStrategy(ctx, req.(*DevelopStrategyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReasoningService_AnalyzeCompetitors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeCompetitorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReasoningServiceServer).AnalyzeCompetitors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReasoningService_AnalyzeCompetitors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReasoningServiceServer).AnalyzeCompetitors(ctx, req.(*AnalyzeCompetitorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReasoningService_PlanCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanCampaignRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReasoningServiceServer).PlanCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReasoningService_PlanCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReasoningServiceServer).PlanCampaign(ctx, req.(*PlanCampaignRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReasoningService_GenerateDailyContent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateDailyContentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReasoningServiceServer).GenerateDailyContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReasoningService_GenerateDailyContent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReasoningServiceServer).GenerateDailyContent(ctx, req.(*GenerateDailyContentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReasoningService_AnalyzeOutcome_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeOutcomeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReasoningServiceServer).AnalyzeOutcome(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReasoningService_AnalyzeOutcome_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReasoningServiceServer).AnalyzeOutcome(ctx, req.(*AnalyzeOutcomeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReasoningService_ServiceDesc is the grpc.ServiceDesc for ReasoningService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReasoningService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "reasoning.v1.ReasoningService",
	HandlerType: (*ReasoningServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeContext",
			Handler:    _ReasoningService_AnalyzeContext_Handler,
		},
		{
			MethodName: "DevelopStrategy",
			Handler:    _ReasoningService_DevelopStrategy_Handler,
		},
		{
			MethodName: "AnalyzeCompetitors",
			Handler:    _ReasoningService_AnalyzeCompetitors_Handler,
		},
		{
			MethodName: "PlanCampaign",
			Handler:    _ReasoningService_PlanCampaign_Handler,
		},
		{
			MethodName: "GenerateDailyContent",
			Handler:    _ReasoningService_GenerateDailyContent_Handler,
		},
		{
			MethodName: "AnalyzeOutcome",
			Handler:    _ReasoningService_AnalyzeOutcome_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/reasoning.proto",
}
