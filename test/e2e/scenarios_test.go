package e2e

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/customcomponents/salvage-engine/api/v1alpha1"
	"github.com/customcomponents/salvage-engine/internal/engagement"
	"github.com/customcomponents/salvage-engine/internal/salvage"
	"github.com/customcomponents/salvage-engine/internal/testutil"
)

type scenario struct {
	file    string
	profile string
	draws   []float64

	potential []v1alpha1.SalvageEntryStatus
	forced    []v1alpha1.SalvageEntryStatus
	lostMechs []string
	final     int32
	priority  int32
}

func loadEngagement(name string) *v1alpha1.Engagement {
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	Expect(err).NotTo(HaveOccurred())
	eng := &v1alpha1.Engagement{}
	Expect(yaml.UnmarshalStrict(raw, eng)).To(Succeed())
	return eng
}

func part(chassis string, n int32) v1alpha1.SalvageEntryStatus {
	return v1alpha1.SalvageEntryStatus{Type: "MechPart", DefID: chassis, Tier: "Functional", Count: n}
}

func component(id, componentType, rarity string, n int32) v1alpha1.SalvageEntryStatus {
	return v1alpha1.SalvageEntryStatus{
		Type:          "Component",
		DefID:         id,
		ComponentType: componentType,
		Rarity:        rarity,
		Tier:          "Functional",
		Count:         n,
	}
}

var _ = Describe("Engagement salvage", func() {
	DescribeTable("generates the expected status",
		func(sc scenario) {
			settings, err := profiles.ResolveSettings(sc.profile)
			Expect(err).NotTo(HaveOccurred())
			gen, err := salvage.NewGenerator(settings)
			Expect(err).NotTo(HaveOccurred())

			eng := loadEngagement(sc.file)
			constants := fileConfig.Constants
			rng := testutil.NewSequence(sc.draws...)
			req, err := engagement.ToRequest(eng, &salvage.Simulation{Constants: &constants, Random: rng})
			Expect(err).NotTo(HaveOccurred())

			result, err := gen.Run(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			engagement.ApplyResult(eng, result, err, metav1.Now())

			By("checking every scripted draw was taken")
			Expect(rng.Calls).To(Equal(len(sc.draws)))

			By("checking the pools and budget")
			status := eng.Status
			Expect(status.Ran).To(BeTrue())
			Expect(status.Phase).To(Equal("Done"))
			Expect(status.PotentialSalvage).To(Equal(sc.potential))
			Expect(status.ForcedSalvage).To(Equal(sc.forced))
			Expect(status.LostMechs).To(Equal(sc.lostMechs))
			Expect(status.FinalSalvageCount).To(Equal(sc.final))
			Expect(status.FinalPrioritySalvageCount).To(Equal(sc.priority))
			Expect(meta.IsStatusConditionTrue(status.Conditions, v1alpha1.TypeSalvageGenerated)).To(BeTrue())

			By("checking the shared constants were left untouched")
			Expect(constants).To(Equal(fileConfig.Constants))
			Expect(req.Contract.FinalDifficulty).To(Equal(eng.Spec.Contract.Difficulty))

			By("checking the status survives a YAML round trip")
			out, err := yaml.Marshal(eng)
			Expect(err).NotTo(HaveOccurred())
			decoded := &v1alpha1.Engagement{}
			Expect(yaml.Unmarshal(out, decoded)).To(Succeed())
			Expect(decoded.Status.PotentialSalvage).To(Equal(status.PotentialSalvage))
			Expect(decoded.Status.FinalSalvageCount).To(Equal(status.FinalSalvageCount))
		},
		Entry("victory with the default profile", scenario{
			file: "victory.yaml",
			// Recovery roll for the hunchback, then the rare PPC on the centurion.
			draws: []float64{0.3, 0.05},
			potential: []v1alpha1.SalvageEntryStatus{
				part("chassisdef_hunchback_HBK-4G", 3),
				component("Weapon_Laser_MediumLaser_0-STOCK", "Weapon", "Common", 3),
				component("Gear_HeatSink_Generic_Standard", "HeatSink", "Common", 1),
				part("chassisdef_centurion_CN9-A", 2),
				component("Weapon_PPC_PPCER_1-Tiegart", "Weapon", "Rare", 1),
			},
			final:    5,
			priority: 1,
		}),
		Entry("defeat with an unrecovered mech under the hardcore profile", scenario{
			file:    "defeat.yaml",
			profile: "hardcore",
			// Weighted recovery roll for the atlas, then the very rare
			// targeting computer on the wolverine.
			draws: []float64{0.5, 0.01},
			potential: []v1alpha1.SalvageEntryStatus{
				part("chassisdef_wolverine_WVR-6R", 3),
				component("Gear_TargetingTrackingSystem_Sensei", "Upgrade", "VeryRare", 1),
				component("Weapon_Laser_MediumLaser_0-STOCK", "Weapon", "Common", 1),
			},
			forced: []v1alpha1.SalvageEntryStatus{
				part("chassisdef_atlas_AS7-D", 2),
				component("Gear_HeatSink_Generic_Standard", "HeatSink", "Common", 1),
			},
			lostMechs: []string{"player-as7"},
			final:     3,
			priority:  0,
		}),
	)

	It("rejects an engagement without simulation state", func() {
		settings, err := profiles.ResolveSettings("")
		Expect(err).NotTo(HaveOccurred())
		gen, err := salvage.NewGenerator(settings)
		Expect(err).NotTo(HaveOccurred())

		eng := loadEngagement("victory.yaml")
		req, err := engagement.ToRequest(eng, nil)
		Expect(err).NotTo(HaveOccurred())

		result, err := gen.Run(ctx, req)
		Expect(err).To(MatchError(salvage.ErrNoSimulation))
		engagement.ApplyResult(eng, result, err, metav1.Now())

		Expect(eng.Status.Ran).To(BeFalse())
		Expect(eng.Status.Phase).To(Equal("Aborted"))
		Expect(eng.Status.PotentialSalvage).To(BeEmpty())
		cond := meta.FindStatusCondition(eng.Status.Conditions, v1alpha1.TypeSalvageGenerated)
		Expect(cond).NotTo(BeNil())
		Expect(cond.Reason).To(Equal(v1alpha1.ReasonNoSimulation))
	})

	It("reports an engagement that cannot be converted", func() {
		eng := loadEngagement("defeat.yaml")
		eng.Spec.Contract.Outcome = "Ceasefire"

		_, err := engagement.ToRequest(eng, nil)
		Expect(err).To(HaveOccurred())
		engagement.ApplyConversionError(eng, err, metav1.Now())

		Expect(meta.IsStatusConditionFalse(eng.Status.Conditions, v1alpha1.TypeSalvageGenerated)).To(BeTrue())
		Expect(eng.Status.Conditions[0].Reason).To(Equal(v1alpha1.ReasonInvalidEngagement))
	})
})
