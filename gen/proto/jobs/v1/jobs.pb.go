// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: jobs/v1/jobs.proto

package jobsv1

import (
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

type SubmitJobRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// One of: receipt, estimate, estimate_append.
	Kind         string `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	CompanyToken string `protobuf:"bytes,2,opt,name=company_token,json=companyToken,proto3" json:"company_token,omitempty"`
	// Target record in the web layer (receipt submission id or estimate id).
	TargetId  string `protobuf:"bytes,3,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	AudioPath string `protobuf:"bytes,4,opt,name=audio_path,json=audioPath,proto3" json:"audio_path,omitempty"`
	// Required for receipt jobs only.
	ImagePath     string `protobuf:"bytes,5,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobRequest) Reset() {
	*x = SubmitJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobRequest) ProtoMessage() {}

func (x *SubmitJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitJobRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *SubmitJobRequest) GetCompanyToken() string {
	if x != nil {
		return x.CompanyToken
	}
	return ""
}

func (x *SubmitJobRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *SubmitJobRequest) GetAudioPath() string {
	if x != nil {
		return x.AudioPath
	}
	return ""
}

func (x *SubmitJobRequest) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobStatus struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind  string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	// One of: pending, processing, complete, error.
	Status        string `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Transcription string `protobuf:"bytes,4,opt,name=transcription,proto3" json:"transcription,omitempty"`
	DocumentPath  string `protobuf:"bytes,5,opt,name=document_path,json=documentPath,proto3" json:"document_path,omitempty"`
	SummaryPath   string `protobuf:"bytes,6,opt,name=summary_path,json=summaryPath,proto3" json:"summary_path,omitempty"`
	// Set only when status is error.
	ErrorMessage  string `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CompletedAt   string `protobuf:"bytes,9,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobStatus) Reset() {
	*x = JobStatus{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobStatus) ProtoMessage() {}

func (x *JobStatus) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobStatus.ProtoReflect.Descriptor instead.
func (*JobStatus) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{3}
}

func (x *JobStatus) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *JobStatus) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *JobStatus) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobStatus) GetTranscription() string {
	if x != nil {
		return x.Transcription
	}
	return ""
}

func (x *JobStatus) GetDocumentPath() string {
	if x != nil {
		return x.DocumentPath
	}
	return ""
}

func (x *JobStatus) GetSummaryPath() string {
	if x != nil {
		return x.SummaryPath
	}
	return ""
}

func (x *JobStatus) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *JobStatus) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *JobStatus) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *JobStatus             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobStatusResponse) GetJob() *JobStatus {
	if x != nil {
		return x.Job
	}
	return nil
}

var File_jobs_v1_jobs_proto protoreflect.FileDescriptor

const file_jobs_v1_jobs_proto_rawDesc = "" +
	"\n" +
	"\x12jobs/v1/jobs.proto\x12\ajobs.v1\"\xa6\x01\n" +
	"\x10SubmitJobRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12#\n" +
	"\rcompany_token\x18\x02 \x01(\tR\fcompanyToken\x12\x1b\n" +
	"\ttarget_id\x18\x03 \x01(\tR\btargetId\x12\x1d\n" +
	"\n" +
	"audio_path\x18\x04 \x01(\tR\taudioPath\x12\x1d\n" +
	"\n" +
	"image_path\x18\x05 \x01(\tR\timagePath\"*\n" +
	"\x11SubmitJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x9c\x02\n" +
	"\tJobStatus\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12$\n" +
	"\rtranscription\x18\x04 \x01(\tR\rtranscription\x12#\n" +
	"\rdocument_path\x18\x05 \x01(\tR\fdocumentPath\x12!\n" +
	"\fsummary_path\x18\x06 \x01(\tR\vsummaryPath\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12!\n" +
	"\fcompleted_at\x18\t \x01(\tR\vcompletedAt\"<\n" +
	"\x14GetJobStatusResponse\x12$\n" +
	"\x03job\x18\x01 \x01(\v2\x12.jobs.v1.JobStatusR\x03job2\x9e\x01\n" +
	"\vJobsService\x12B\n" +
	"\tSubmitJob\x12\x19.jobs.v1.SubmitJobRequest\x1a\x1a.jobs.v1.SubmitJobResponse\x12K\n" +
	"\fGetJobStatus\x12\x1c.jobs.v1.GetJobStatusRequest\x1a\x1d.jobs.v1.GetJobStatusResponseB;Z9github.com/fieldvoice/backoffice/gen/proto/jobs/v1;jobsv1b\x06proto3"

var (
	file_jobs_v1_jobs_proto_rawDescOnce sync.Once
	file_jobs_v1_jobs_proto_rawDescData []byte
)

func file_jobs_v1_jobs_proto_rawDescGZIP() []byte {
	file_jobs_v1_jobs_proto_rawDescOnce.Do(func() {
		file_jobs_v1_jobs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)))
	})
	return file_jobs_v1_jobs_proto_rawDescData
}

var file_jobs_v1_jobs_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_jobs_v1_jobs_proto_goTypes = []any{
	(*SubmitJobRequest)(nil),     // 0: jobs.v1.SubmitJobRequest
	(*SubmitJobResponse)(nil),    // 1: jobs.v1.SubmitJobResponse
	(*GetJobStatusRequest)(nil),  // 2: jobs.v1.GetJobStatusRequest
	(*JobStatus)(nil),            // 3: jobs.v1.JobStatus
	(*GetJobStatusResponse)(nil), // 4: jobs.v1.GetJobStatusResponse
}
var file_jobs_v1_jobs_proto_depIdxs = []int32{
	3, // 0: jobs.v1.GetJobStatusResponse.job:type_name -> jobs.v1.JobStatus
	0, // 1: jobs.v1.JobsService.SubmitJob:input_type -> jobs.v1.SubmitJobRequest
	2, // 2: jobs.v1.JobsService.GetJobStatus:input_type -> jobs.v1.GetJobStatusRequest
	1, // 3: jobs.v1.JobsService.SubmitJob:output_type -> jobs.v1.SubmitJobResponse
	4, // 4: jobs.v1.JobsService.GetJobStatus:output_type -> jobs.v1.GetJobStatusResponse
	3, // [3:5] is the sub-list for method output_type
	1, // [1:3] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_jobs_v1_jobs_proto_init() }
func file_jobs_v1_jobs_proto_init() {
	if File_jobs_v1_jobs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_jobs_v1_jobs_proto_goTypes,
		DependencyIndexes: file_jobs_v1_jobs_proto_depIdxs,
		MessageInfos:      file_jobs_v1_jobs_proto_msgTypes,
	}.Build()
	File_jobs_v1_jobs_proto = out.File
	file_jobs_v1_jobs_proto_goTypes = nil
	file_jobs_v1_jobs_proto_depIdxs = nil
}
