package repository

import (
	"errors"
	"testing"

	"fittrack/internal/model"

	"gorm.io/gorm"
)

func TestFriendshipNormalizedStorage(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	req := &model.FriendRequest{FromUserID: b.ID, ToUserID: a.ID, Status: model.FriendRequestPending}
	if err := repo.CreateRequest(req); err != nil {
		t.Fatalf("create request: %v", err)
	}
	if err := repo.AcceptRequest(req); err != nil {
		t.Fatalf("accept request: %v", err)
	}

	// 无论请求方向如何，行始终按 user_id < friend_user_id 存储
	var f model.Friendship
	if err := db.First(&f).Error; err != nil {
		t.Fatalf("load friendship: %v", err)
	}
	if f.UserID >= f.FriendUserID {
		t.Errorf("friendship not normalized: user_id=%d friend_user_id=%d", f.UserID, f.FriendUserID)
	}

	// 两个方向的存在性查询都命中
	for _, pair := range [][2]uint{{a.ID, b.ID}, {b.ID, a.ID}} {
		exists, err := repo.FriendshipExists(pair[0], pair[1])
		if err != nil {
			t.Fatalf("FriendshipExists(%d, %d): %v", pair[0], pair[1], err)
		}
		if !exists {
			t.Errorf("FriendshipExists(%d, %d) = false, want true", pair[0], pair[1])
		}
	}
}

func TestFriendRequestUniquePerDirection(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	first := &model.FriendRequest{FromUserID: a.ID, ToUserID: b.ID, Status: model.FriendRequestPending}
	if err := repo.CreateRequest(first); err != nil {
		t.Fatalf("create first request: %v", err)
	}

	// 同方向第二条请求必须撞唯一键
	dup := &model.FriendRequest{FromUserID: a.ID, ToUserID: b.ID, Status: model.FriendRequestPending}
	err := repo.CreateRequest(dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate request error = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestAcceptRequestTerminalState(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	req := &model.FriendRequest{FromUserID: a.ID, ToUserID: b.ID, Status: model.FriendRequestPending}
	if err := repo.CreateRequest(req); err != nil {
		t.Fatalf("create request: %v", err)
	}
	if err := repo.AcceptRequest(req); err != nil {
		t.Fatalf("accept request: %v", err)
	}

	// 重复accept幂等成功，不产生第二行friendship
	if err := repo.AcceptRequest(req); err != nil {
		t.Errorf("second accept error = %v, want nil", err)
	}
	// 已accepted的请求不允许转移到rejected
	if err := repo.RejectRequest(req); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("reject after accept error = %v, want gorm.ErrRecordNotFound", err)
	}

	// friendship 只有一行
	var count int64
	db.Model(&model.Friendship{}).Count(&count)
	if count != 1 {
		t.Errorf("friendship count = %d, want 1", count)
	}
}

func TestRejectRequestRepeatable(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	req := &model.FriendRequest{FromUserID: a.ID, ToUserID: b.ID, Status: model.FriendRequestPending}
	if err := repo.CreateRequest(req); err != nil {
		t.Fatalf("create request: %v", err)
	}
	if err := repo.RejectRequest(req); err != nil {
		t.Fatalf("reject request: %v", err)
	}

	// 重复reject幂等成功；已rejected的请求不允许accept
	if err := repo.RejectRequest(req); err != nil {
		t.Errorf("second reject error = %v, want nil", err)
	}
	if err := repo.AcceptRequest(req); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("accept after reject error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestAcceptRequestAtomicity(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	req := &model.FriendRequest{FromUserID: a.ID, ToUserID: b.ID, Status: model.FriendRequestPending}
	if err := repo.CreateRequest(req); err != nil {
		t.Fatalf("create request: %v", err)
	}

	// 预置同一对的friendship行，accept仍应成功（冲突视为已建立）
	lo, hi := model.NormalizePair(a.ID, b.ID)
	if err := db.Create(&model.Friendship{UserID: lo, FriendUserID: hi}).Error; err != nil {
		t.Fatalf("pre-create friendship: %v", err)
	}

	if err := repo.AcceptRequest(req); err != nil {
		t.Fatalf("accept with existing friendship: %v", err)
	}

	loaded, err := repo.GetRequestByID(req.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if loaded.Status != model.FriendRequestAccepted {
		t.Errorf("request status = %q, want %q", loaded.Status, model.FriendRequestAccepted)
	}

	var count int64
	db.Model(&model.Friendship{}).Count(&count)
	if count != 1 {
		t.Errorf("friendship count = %d, want 1", count)
	}
}
