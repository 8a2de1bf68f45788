package entity

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVolumeRequest_UnmarshalXML(t *testing.T) {
	t.Parallel()

	t.Run("full attribute set", func(t *testing.T) {
		t.Parallel()

		input := `<volume size="10" display_name="backup" display_description="nightly" ` +
			`volume_type="SSD" availability_zone="nova">` +
			`<metadata><meta key="team">infra</meta></metadata></volume>`

		var req CreateVolumeRequest
		require.NoError(t, xml.Unmarshal([]byte(input), &req))
		require.NotNil(t, req.Volume)

		require.NotNil(t, req.Volume.SizeGB)
		assert.Equal(t, int64(10), *req.Volume.SizeGB)
		require.NotNil(t, req.Volume.DisplayName)
		assert.Equal(t, "backup", *req.Volume.DisplayName)
		require.NotNil(t, req.Volume.VolumeType)
		assert.Equal(t, "SSD", *req.Volume.VolumeType)
		require.NotNil(t, req.Volume.AvailabilityZone)
		assert.Equal(t, "nova", *req.Volume.AvailabilityZone)
		assert.Equal(t, Metadata{"team": "infra"}, req.Volume.Metadata)
	})

	t.Run("absent attributes stay nil", func(t *testing.T) {
		t.Parallel()

		var req CreateVolumeRequest
		require.NoError(t, xml.Unmarshal([]byte(`<volume size="10"></volume>`), &req))
		require.NotNil(t, req.Volume)
		assert.Nil(t, req.Volume.DisplayName)
		assert.Nil(t, req.Volume.DisplayDescription)
		assert.Nil(t, req.Volume.VolumeType)
		assert.Nil(t, req.Volume.AvailabilityZone)
		assert.Nil(t, req.Volume.Metadata)
	})

	t.Run("unrecognized attributes ignored", func(t *testing.T) {
		t.Parallel()

		var req CreateVolumeRequest
		require.NoError(t, xml.Unmarshal([]byte(`<volume size="10" snapshot_id="snap-1" backend="x"/>`), &req))
		require.NotNil(t, req.Volume)
		// 快照引用只在 JSON 表示中受支持
		assert.Nil(t, req.Volume.SnapshotID)
		assert.Nil(t, req.Volume.ImageRef)
	})

	t.Run("malformed size is an error", func(t *testing.T) {
		t.Parallel()

		var req CreateVolumeRequest
		err := xml.Unmarshal([]byte(`<volume size="ten"/>`), &req)
		assert.Error(t, err)
	})

	t.Run("unknown children skipped", func(t *testing.T) {
		t.Parallel()

		var req CreateVolumeRequest
		require.NoError(t, xml.Unmarshal([]byte(`<volume size="1"><bogus><deep/></bogus></volume>`), &req))
		require.NotNil(t, req.Volume)
		require.NotNil(t, req.Volume.SizeGB)
		assert.Equal(t, int64(1), *req.Volume.SizeGB)
	})
}

func TestUpdateVolumeRequest_UnmarshalXML(t *testing.T) {
	t.Parallel()

	t.Run("editable fields only", func(t *testing.T) {
		t.Parallel()

		input := `<volume display_name="renamed" size="99">` +
			`<metadata><meta key="k">v</meta></metadata></volume>`

		var req UpdateVolumeRequest
		require.NoError(t, xml.Unmarshal([]byte(input), &req))
		require.NotNil(t, req.Volume)
		require.NotNil(t, req.Volume.DisplayName)
		assert.Equal(t, "renamed", *req.Volume.DisplayName)
		assert.Nil(t, req.Volume.DisplayDescription)
		assert.Equal(t, Metadata{"k": "v"}, req.Volume.Metadata)
	})

	t.Run("wrong root element", func(t *testing.T) {
		t.Parallel()

		var req UpdateVolumeRequest
		err := xml.Unmarshal([]byte(`<update display_name="x"/>`), &req)
		assert.Error(t, err)
	})
}

func TestCreateVolumeRequest_JSON(t *testing.T) {
	t.Parallel()

	// JSON 表示支持 XML 允许列表之外的快照和镜像引用
	input := `{"volume":{"size":10,"snapshot_id":"snap-1","imageRef":"img"}}`
	var req CreateVolumeRequest
	require.NoError(t, json.Unmarshal([]byte(input), &req))
	require.NotNil(t, req.Volume)
	require.NotNil(t, req.Volume.SnapshotID)
	assert.Equal(t, "snap-1", *req.Volume.SnapshotID)
	require.NotNil(t, req.Volume.ImageRef)
	assert.Equal(t, "img", *req.Volume.ImageRef)
}
