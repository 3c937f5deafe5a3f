package extract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/pkg/extract"
	"github.com/caroogle/bob/pkg/refdata"
	domain "github.com/caroogle/bob/pkg/types"
)

func newNormalizer(t *testing.T) *extract.Normalizer {
	t.Helper()
	tables, err := refdata.Default()
	require.NoError(t, err)
	return extract.NewNormalizer(tables)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNormalizeListing(t *testing.T) {
	t.Parallel()

	n := newNormalizer(t)

	tests := []struct {
		name         string
		raw          domain.RawListing
		wantMake     string
		wantModel    string
		wantPlatform string
		wantVariant  string
		wantYear     int
		wantDrive    domain.DrivetrainBucket
	}{
		{
			name: "typed fields",
			raw: domain.RawListing{
				Make: "Toyota", Model: "Hilux", Variant: "SR5", Year: 2021,
				Km: intPtr(60000), AskingPrice: floatPtr(38000),
			},
			wantMake: "TOYOTA", wantModel: "HILUX", wantPlatform: "TOYOTA:HILUX",
			wantVariant: "SR5", wantYear: 2021, wantDrive: domain.DrivetrainUnknown,
		},
		{
			name: "multi word token preferred",
			raw: domain.RawListing{
				Make: "TOYOTA", Model: "HILUX", Year: 2019,
				Title: "2019 Toyota Hilux Rugged X 4x4 Double Cab",
			},
			wantMake: "TOYOTA", wantModel: "HILUX", wantPlatform: "TOYOTA:HILUX",
			wantVariant: "RUGGED X", wantYear: 2019, wantDrive: domain.Drivetrain4WD,
		},
		{
			name: "variant field wins over title",
			raw: domain.RawListing{
				Make: "Ford", Model: "Ranger", Variant: "XLT", Year: 2020,
				Title: "Ford Ranger Wildtrak look-alike",
			},
			wantMake: "FORD", wantModel: "RANGER", wantPlatform: "FORD:RANGER",
			wantVariant: "XLT", wantYear: 2020, wantDrive: domain.DrivetrainUnknown,
		},
		{
			name: "hyphen variance",
			raw: domain.RawListing{
				Make: "Nissan", Model: "Navara", Variant: "STX", Year: 2018, Drivetrain: "4WD",
			},
			wantMake: "NISSAN", wantModel: "NAVARA", wantPlatform: "NISSAN:NAVARA",
			wantVariant: "ST-X", wantYear: 2018, wantDrive: domain.Drivetrain4WD,
		},
		{
			name: "plus variance",
			raw: domain.RawListing{
				Make: "Mitsubishi", Model: "Triton", Variant: "GLX + Double Cab", Year: 2022,
			},
			wantMake: "MITSUBISHI", wantModel: "TRITON", wantPlatform: "MITSUBISHI:TRITON",
			wantVariant: "GLX+", wantYear: 2022, wantDrive: domain.DrivetrainUnknown,
		},
		{
			name: "platform registry",
			raw: domain.RawListing{
				Make: "Toyota", Model: "Landcruiser 200", Variant: "GXL", Year: 2017,
			},
			wantMake: "TOYOTA", wantModel: "LANDCRUISER 200", wantPlatform: "TOYOTA:LANDCRUISER",
			wantVariant: "GXL", wantYear: 2017, wantDrive: domain.DrivetrainUnknown,
		},
		{
			name: "generic fallback",
			raw: domain.RawListing{
				Make: "Hyundai", Model: "Tucson", Variant: "Elite AWD", Year: 2021,
			},
			wantMake: "HYUNDAI", wantModel: "TUCSON", wantPlatform: "HYUNDAI:TUCSON",
			wantVariant: "ELITE", wantYear: 2021, wantDrive: domain.Drivetrain4WD,
		},
		{
			name: "unresolved stays empty",
			raw: domain.RawListing{
				Make: "Toyota", Model: "Hilux", Variant: "Custom Auto Diesel", Year: 2016,
			},
			wantMake: "TOYOTA", wantModel: "HILUX", wantPlatform: "TOYOTA:HILUX",
			wantVariant: "", wantYear: 2016, wantDrive: domain.DrivetrainUnknown,
		},
		{
			name: "identity from title",
			raw: domain.RawListing{
				Title: "2018 VW Amarok Highline 4Motion",
			},
			wantMake: "VOLKSWAGEN", wantModel: "AMAROK", wantPlatform: "VOLKSWAGEN:AMAROK",
			wantVariant: "HIGHLINE", wantYear: 2018, wantDrive: domain.Drivetrain4WD,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := n.NormalizeListing(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMake, id.Make)
			assert.Equal(t, tt.wantModel, id.Model)
			assert.Equal(t, tt.wantPlatform, id.PlatformClass)
			assert.Equal(t, tt.wantVariant, id.VariantFamily)
			assert.Equal(t, tt.wantYear, id.Year)
			assert.Equal(t, tt.wantDrive, id.Drivetrain)
			assert.Equal(t, tt.raw.Km, id.Km)
			assert.Equal(t, tt.raw.AskingPrice, id.AskingPrice)
		})
	}
}

func TestNormalizeListing_MissingIdentity(t *testing.T) {
	t.Parallel()

	n := newNormalizer(t)

	tests := []struct {
		name    string
		raw     domain.RawListing
		wantErr string
	}{
		{name: "no make", raw: domain.RawListing{Model: "Hilux", Year: 2020}, wantErr: "make"},
		{name: "unknown make", raw: domain.RawListing{Make: "Zastava", Model: "Yugo", Year: 1988}, wantErr: "make"},
		{name: "no model", raw: domain.RawListing{Make: "Toyota", Year: 2020}, wantErr: "model"},
		{name: "no year", raw: domain.RawListing{Make: "Toyota", Model: "Hilux"}, wantErr: "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := n.NormalizeListing(tt.raw)
			require.ErrorIs(t, err, extract.ErrMissingIdentity)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeSale(t *testing.T) {
	t.Parallel()

	n := newNormalizer(t)
	soldAt := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("trim class given", func(t *testing.T) {
		t.Parallel()
		s, err := n.NormalizeSale(domain.RawSale{
			SourceID: "s-1", Make: "toyota", Model: "hilux", TrimClass: "sr5",
			Year: 2020, Km: intPtr(55000), BuyPrice: floatPtr(42000), SalePrice: floatPtr(47000),
			SoldAt: &soldAt,
		})
		require.NoError(t, err)
		assert.Equal(t, "TOYOTA", s.Make)
		assert.Equal(t, "HILUX", s.Model)
		assert.Equal(t, "TOYOTA:HILUX", s.PlatformClass)
		assert.Equal(t, "SR5", s.TrimClass)
		assert.Equal(t, soldAt, s.SoldAt)
		assert.True(t, s.IsProfitable())
	})

	t.Run("trim from variant", func(t *testing.T) {
		t.Parallel()
		s, err := n.NormalizeSale(domain.RawSale{
			Make: "Toyota", Model: "Hilux", Variant: "Rogue 4x4", Year: 2021,
		})
		require.NoError(t, err)
		assert.Equal(t, "ROGUE", s.TrimClass)
		assert.Equal(t, domain.Drivetrain4WD, s.Drivetrain)
		assert.False(t, s.IsProfitable())
	})

	t.Run("bare platform class gets make prefix", func(t *testing.T) {
		t.Parallel()
		s, err := n.NormalizeSale(domain.RawSale{
			Make: "Toyota", Model: "LC79", PlatformClass: "landcruiser 70", Year: 2019,
		})
		require.NoError(t, err)
		assert.Equal(t, "TOYOTA:LANDCRUISER 70", s.PlatformClass)
	})

	t.Run("missing year", func(t *testing.T) {
		t.Parallel()
		_, err := n.NormalizeSale(domain.RawSale{Make: "Toyota", Model: "Hilux"})
		require.ErrorIs(t, err, extract.ErrMissingIdentity)
	})
}

func TestResolveMake(t *testing.T) {
	t.Parallel()

	n := newNormalizer(t)

	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{text: "Toyota", want: "TOYOTA", ok: true},
		{text: "2019 Mercedes-Benz X250d Power", want: "MERCEDES-BENZ", ok: true},
		{text: "Land Rover Defender 110", want: "LAND ROVER", ok: true},
		{text: "ex-fleet Ford Ranger, one owner", want: "FORD", ok: true},
		{text: "Merc Sprinter", want: "MERCEDES-BENZ", ok: true},
		{text: "Tractor, no make given", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got, ok := n.ResolveMake(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveVariant_StopwordsNeverTrims(t *testing.T) {
	t.Parallel()

	n := newNormalizer(t)

	assert.Empty(t, n.ResolveVariant("HOLDEN", "COMMODORE", "Auto Petrol Sedan 2015 350"))
	assert.Equal(t, "LTZ", n.ResolveVariant("HOLDEN", "COLORADO", "LTZ Auto Diesel 4x4"))
}
