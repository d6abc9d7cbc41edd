// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: beanledger/ingest/v1/ingest.proto

package ingestv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitDirectiveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payload       []byte                 `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDirectiveRequest) Reset() {
	*x = SubmitDirectiveRequest{}
	mi := &file_beanledger_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDirectiveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDirectiveRequest) ProtoMessage() {}

func (x *SubmitDirectiveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDirectiveRequest.ProtoReflect.Descriptor instead.
func (*SubmitDirectiveRequest) Descriptor() ([]byte, []int) {
	return file_beanledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitDirectiveRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type SubmitDirectiveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDirectiveResponse) Reset() {
	*x = SubmitDirectiveResponse{}
	mi := &file_beanledger_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDirectiveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDirectiveResponse) ProtoMessage() {}

func (x *SubmitDirectiveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDirectiveResponse.ProtoReflect.Descriptor instead.
func (*SubmitDirectiveResponse) Descriptor() ([]byte, []int) {
	return file_beanledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitDirectiveResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *SubmitDirectiveResponse) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

var File_beanledger_ingest_v1_ingest_proto protoreflect.FileDescriptor

const file_beanledger_ingest_v1_ingest_proto_rawDesc = "" +
	"\n" +
	"!beanledger/ingest/v1/ingest.proto\x12\x14beanledger.ingest.v1\x1a\x1cgoogle/api/annotations.proto\"2\n" +
	"\x16SubmitDirectiveRequest\x12\x18\n" +
	"\apayload\x18\x01 \x01(\fR\apayload\"I\n" +
	"\x17SubmitDirectiveResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind2\x9b\x01\n" +
	"\rIngestService\x12\x89\x01\n" +
	"\x0fSubmitDirective\x12,.beanledger.ingest.v1.SubmitDirectiveRequest\x1a-.beanledger.ingest.v1.SubmitDirectiveResponse\"\x19\x82\xd3\xe4\x93\x02\x13:\x01*\"\x0e/v1/directivesB1Z/BeanLedger/gen/go/beanledger/ingest/v1;ingestv1b\x06proto3"

var (
	file_beanledger_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_beanledger_ingest_v1_ingest_proto_rawDescData []byte
)

func file_beanledger_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_beanledger_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_beanledger_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_beanledger_ingest_v1_ingest_proto_rawDesc), len(file_beanledger_ingest_v1_ingest_proto_rawDesc)))
	})
	return file_beanledger_ingest_v1_ingest_proto_rawDescData
}

var file_beanledger_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_beanledger_ingest_v1_ingest_proto_goTypes = []any{
	(*SubmitDirectiveRequest)(nil),  // 0: beanledger.ingest.v1.SubmitDirectiveRequest
	(*SubmitDirectiveResponse)(nil), // 1: beanledger.ingest.v1.SubmitDirectiveResponse
}
var file_beanledger_ingest_v1_ingest_proto_depIdxs = []int32{
	0, // 0: beanledger.ingest.v1.IngestService.SubmitDirective:input_type -> beanledger.ingest.v1.SubmitDirectiveRequest
	1, // 1: beanledger.ingest.v1.IngestService.SubmitDirective:output_type -> beanledger.ingest.v1.SubmitDirectiveResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_beanledger_ingest_v1_ingest_proto_init() }
func file_beanledger_ingest_v1_ingest_proto_init() {
	if File_beanledger_ingest_v1_ingest_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_beanledger_ingest_v1_ingest_proto_rawDesc), len(file_beanledger_ingest_v1_ingest_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_beanledger_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_beanledger_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_beanledger_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_beanledger_ingest_v1_ingest_proto = out.File
	file_beanledger_ingest_v1_ingest_proto_goTypes = nil
	file_beanledger_ingest_v1_ingest_proto_depIdxs = nil
}
