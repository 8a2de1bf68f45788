package entity

// 卷生命周期状态
const (
	VolumeStatusCreating  = "creating"
	VolumeStatusAvailable = "available"
	VolumeStatusInUse     = "in-use"
	VolumeStatusDeleting  = "deleting"
	VolumeStatusError     = "error"
)

// 卷的附加状态
const (
	AttachStatusAttached = "attached"
	AttachStatusDetached = "detached"
)

// Volume 卷记录
// 由 Volume Service 返回，API 层只读，视图按请求构造、用后即弃
type Volume struct {
	ID                 string `json:"id"`                  // vol-{递增 ID}
	Status             string `json:"status"`              // creating, available, in-use, deleting, error
	SizeGB             int64  `json:"size_gb"`             // 大小（GB）
	AvailabilityZone   string `json:"availability_zone"`   // 可用区
	CreatedAt          string `json:"created_at"`          // 创建时间（RFC3339）
	DisplayName        string `json:"display_name"`        // 显示名称
	DisplayDescription string `json:"display_description"` // 描述
	AttachStatus       string `json:"attach_status"`       // attached, detached
	Mountpoint         string `json:"mountpoint"`          // 挂载点，仅附加时有值，可能为空
	InstanceID         string `json:"instance_id"`         // 附加到的实例 ID，仅附加时有值
	SnapshotID         string `json:"snapshot_id"`         // 来源快照 ID，可能为空

	// VolumeType 已解析的卷类型名称
	// 类型引用的解析在记录跨越服务边界时完成（见 ResolveVolumeType），
	// nil 表示记录完全没有类型引用，与空字符串的类型名严格区分
	VolumeType *string `json:"volume_type"`

	// Metadata 元数据来源，两种形态见 MetadataSource
	Metadata MetadataSource `json:"-"`
}

// VolumeType 卷类型
type VolumeType struct {
	ID   string `json:"id"`   // vt-{递增 ID}
	Name string `json:"name"` // 类型名称，如 standard, gold
}

// Snapshot 快照记录
type Snapshot struct {
	ID        string `json:"id"`         // snap-{递增 ID}
	VolumeID  string `json:"volume_id"`  // 来源卷 ID
	Status    string `json:"status"`     // available, creating, error
	SizeGB    int64  `json:"size_gb"`    // 来源卷的大小（GB）
	CreatedAt string `json:"created_at"` // 创建时间（RFC3339）
}

// ResolveVolumeType 解析卷记录的类型名称
//
// 记录可能携带内嵌的类型对象，也可能只携带裸类型引用（类型系统迁移期间的
// 兼容形态，两条路径都必须保留）：
//   - 类型引用非空且有内嵌对象：取对象的 Name
//   - 类型引用非空但没有内嵌对象：裸引用本身就是类型名（字符串形式）
//   - 没有类型引用：返回 nil，序列化为 null，与存在但为空的类型名区分
func ResolveVolumeType(typeID string, vt *VolumeType) *string {
	if typeID == "" {
		return nil
	}
	if vt != nil {
		name := vt.Name
		return &name
	}
	ref := typeID
	return &ref
}

// CreateVolumeOptions 控制器解析后传给 Volume Service 的创建参数
type CreateVolumeOptions struct {
	SizeGB             *int64      `json:"size_gb"`             // 大小（GB），nil 表示请求未指定
	DisplayName        string      `json:"display_name"`        // 显示名称
	DisplayDescription string      `json:"display_description"` // 描述
	VolumeType         *VolumeType `json:"volume_type"`         // 已解析的卷类型
	Snapshot           *Snapshot   `json:"snapshot"`            // 已解析的来源快照
	ImageID            string      `json:"image_id"`            // 来源镜像 ID
	AvailabilityZone   string      `json:"availability_zone"`   // 可用区
	Metadata           Metadata    `json:"metadata"`            // 元数据，原样透传，不在本层校验
}

// VolumeUpdates 卷更新字段
// 只有这三个字段可以通过更新接口修改，nil 表示请求未提交该字段
type VolumeUpdates struct {
	DisplayName        *string  `json:"display_name"`
	DisplayDescription *string  `json:"display_description"`
	Metadata           Metadata `json:"metadata"`
}

// ApplyUpdates 将更新字段合并进卷记录
//
// 更新接口的响应由更新前取到的记录与本次提交的字段合并渲染，
// 不会在更新后重新读取，这是接口契约中记录在案的一致性取舍
func (v *Volume) ApplyUpdates(updates *VolumeUpdates) {
	if updates == nil {
		return
	}
	if updates.DisplayName != nil {
		v.DisplayName = *updates.DisplayName
	}
	if updates.DisplayDescription != nil {
		v.DisplayDescription = *updates.DisplayDescription
	}
	if updates.Metadata != nil {
		v.Metadata = MetadataMap(updates.Metadata)
	}
}
