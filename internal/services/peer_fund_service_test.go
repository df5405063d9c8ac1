package services

import (
	"testing"
	"time"

	"fundboard/internal/models"
	"fundboard/internal/pagination"
	"fundboard/internal/testutil"
)

func TestListPeerFunds(t *testing.T) {
	t.Run("ordered_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPeerFundService(db)
		testutil.CreateTestPeerFund(t, db, models.PeerLargeCapGrowth)
		testutil.CreateTestPeerFund(t, db, models.PeerLargeCapValue)

		peers, err := svc.ListPeerFunds(pagination.ListParams{})
		testutil.AssertNoError(t, err)

		if len(peers) != 2 {
			t.Fatalf("expected 2 peers, got %d", len(peers))
		}
		if peers[0].Name > peers[1].Name {
			t.Errorf("expected name order, got %s before %s", peers[0].Name, peers[1].Name)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPeerFundService(db)
		for i := 0; i < 4; i++ {
			testutil.CreateTestPeerFund(t, db, models.PeerLargeCapGrowth)
		}

		peers, err := svc.ListPeerFunds(pagination.ListParams{Skip: 3, Limit: 10})
		testutil.AssertNoError(t, err)

		if len(peers) != 1 {
			t.Errorf("expected 1 peer after skip, got %d", len(peers))
		}
	})
}

func TestCreatePeerFund(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPeerFundService(db)

		aum := testutil.Dec(t, "1000000000.00")
		inception := testutil.Date(2015, time.May, 1)
		peer, err := svc.CreatePeerFund(CreatePeerFundInput{
			Name:              "Benchmark Growth Fund",
			BenchmarkCategory: models.PeerLargeCapGrowth,
			TotalAUM:          &aum,
			InceptionDate:     &inception,
			ManagerCompany:    "Benchmark Partners",
		})
		testutil.AssertNoError(t, err)

		if peer.ID == 0 {
			t.Fatal("expected non-zero peer ID")
		}
		if !peer.TotalAUM.Valid || !peer.TotalAUM.Decimal.Equal(aum) {
			t.Errorf("expected AUM %s, got %v", aum, peer.TotalAUM)
		}
		if peer.ExpenseRatio.Valid {
			t.Errorf("expected no expense ratio, got %v", peer.ExpenseRatio)
		}
	})
}

func TestGetPeerFundByID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPeerFundService(db)
		created := testutil.CreateTestPeerFund(t, db, models.PeerSectorTechnology)

		peer, err := svc.GetPeerFundByID(created.ID)
		testutil.AssertNoError(t, err)

		if peer.BenchmarkCategory != models.PeerSectorTechnology {
			t.Errorf("expected sector_technology, got %s", peer.BenchmarkCategory)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPeerFundService(db)

		_, err := svc.GetPeerFundByID(9999)
		testutil.AssertAppError(t, err, "PEER_FUND_NOT_FOUND")
	})
}

func TestDeletePeerFund(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPeerFundService(db)
		peer := testutil.CreateTestPeerFund(t, db, models.PeerLargeCapGrowth)

		testutil.AssertNoError(t, svc.DeletePeerFund(peer.ID))

		_, err := svc.GetPeerFundByID(peer.ID)
		testutil.AssertAppError(t, err, "PEER_FUND_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPeerFundService(db)

		err := svc.DeletePeerFund(9999)
		testutil.AssertAppError(t, err, "PEER_FUND_NOT_FOUND")
	})
}
