package uid

// Transfer Syntax constants and their registration metadata.
//
// The UID strings and retirement status come from DICOM PS3.6 (the Data
// Dictionary); everything past the UID itself — framing, byte order,
// encapsulation — comes from PS3.5 section 10 and is recorded here instead
// of being re-derived from the UID text at lookup time.

// transferSyntaxDef pairs a well-known Transfer Syntax UID with the framing
// facts uid.go's init() needs to populate the registry. Keeping this next to
// the UID constants themselves means adding a new syntax is one line here,
// not a constant plus a separate call elsewhere that's easy to forget.
type transferSyntaxDef struct {
	uid          UID
	name         string
	implicitVR   bool
	bigEndian    bool
	encapsulated bool
	retired      bool
}

var (
	ImplicitVRLittleEndian                                                  = MustParse("1.2.840.10008.1.2")
	ExplicitVRLittleEndian                                                  = MustParse("1.2.840.10008.1.2.1")
	EncapsulatedUncompressedExplicitVRLittleEndian                          = MustParse("1.2.840.10008.1.2.1.98")
	DeflatedExplicitVRLittleEndian                                          = MustParse("1.2.840.10008.1.2.1.99")
	ExplicitVRBigEndian                                                     = MustParse("1.2.840.10008.1.2.2")
	Mpeg2MainProfileMainLevel                                               = MustParse("1.2.840.10008.1.2.4.100")
	FragmentableMpeg2MainProfileMainLevel                                   = MustParse("1.2.840.10008.1.2.4.100.1")
	Mpeg2MainProfileHighLevel                                               = MustParse("1.2.840.10008.1.2.4.101")
	FragmentableMpeg2MainProfileHighLevel                                   = MustParse("1.2.840.10008.1.2.4.101.1")
	MPEG4AvcH264HighProfileLevel41                                          = MustParse("1.2.840.10008.1.2.4.102")
	FragmentableMPEG4AvcH264HighProfileLevel41                              = MustParse("1.2.840.10008.1.2.4.102.1")
	MPEG4AvcH264BdCompatibleHighProfileLevel41                              = MustParse("1.2.840.10008.1.2.4.103")
	FragmentableMPEG4AvcH264BdCompatibleHighProfileLevel41                  = MustParse("1.2.840.10008.1.2.4.103.1")
	MPEG4AvcH264HighProfileLevel42For2dVideo                                = MustParse("1.2.840.10008.1.2.4.104")
	FragmentableMPEG4AvcH264HighProfileLevel42For2dVideo                    = MustParse("1.2.840.10008.1.2.4.104.1")
	MPEG4AvcH264HighProfileLevel42For3dVideo                                = MustParse("1.2.840.10008.1.2.4.105")
	FragmentableMPEG4AvcH264HighProfileLevel42For3dVideo                    = MustParse("1.2.840.10008.1.2.4.105.1")
	MPEG4AvcH264StereoHighProfileLevel42                                    = MustParse("1.2.840.10008.1.2.4.106")
	FragmentableMPEG4AvcH264StereoHighProfileLevel42                        = MustParse("1.2.840.10008.1.2.4.106.1")
	HevcH265MainProfileLevel51                                              = MustParse("1.2.840.10008.1.2.4.107")
	HevcH265Main10ProfileLevel51                                            = MustParse("1.2.840.10008.1.2.4.108")
	JPEGXlLossless                                                          = MustParse("1.2.840.10008.1.2.4.110")
	JPEGXlJPEGRecompression                                                 = MustParse("1.2.840.10008.1.2.4.111")
	JPEGXl                                                                  = MustParse("1.2.840.10008.1.2.4.112")
	HighThroughputJPEG2000ImageCompressionLosslessOnly                      = MustParse("1.2.840.10008.1.2.4.201")
	HighThroughputJPEG2000WithRpclOptionsImageCompressionLosslessOnly       = MustParse("1.2.840.10008.1.2.4.202")
	HighThroughputJPEG2000ImageCompression                                  = MustParse("1.2.840.10008.1.2.4.203")
	JpipHtj2kReferenced                                                     = MustParse("1.2.840.10008.1.2.4.204")
	JpipHtj2kReferencedDeflate                                              = MustParse("1.2.840.10008.1.2.4.205")
	JPEGBaselineProcess1                                                    = MustParse("1.2.840.10008.1.2.4.50")
	JPEGExtendedProcess2And4                                                = MustParse("1.2.840.10008.1.2.4.51")
	JPEGExtendedProcess3And5                                                = MustParse("1.2.840.10008.1.2.4.52")
	JPEGSpectralSelectionNonHierarchicalProcess6And8                        = MustParse("1.2.840.10008.1.2.4.53")
	JPEGSpectralSelectionNonHierarchicalProcess7And9                        = MustParse("1.2.840.10008.1.2.4.54")
	JPEGFullProgressionNonHierarchicalProcess10And12                       = MustParse("1.2.840.10008.1.2.4.55")
	JPEGFullProgressionNonHierarchicalProcess11And13                       = MustParse("1.2.840.10008.1.2.4.56")
	JPEGLosslessNonHierarchicalProcess14                                    = MustParse("1.2.840.10008.1.2.4.57")
	JPEGLosslessNonHierarchicalProcess15                                    = MustParse("1.2.840.10008.1.2.4.58")
	JPEGExtendedHierarchicalProcess16And18                                  = MustParse("1.2.840.10008.1.2.4.59")
	JPEGExtendedHierarchicalProcess17And19                                  = MustParse("1.2.840.10008.1.2.4.60")
	JPEGSpectralSelectionHierarchicalProcess20And22                        = MustParse("1.2.840.10008.1.2.4.61")
	JPEGSpectralSelectionHierarchicalProcess21And23                        = MustParse("1.2.840.10008.1.2.4.62")
	JPEGFullProgressionHierarchicalProcess24And26                          = MustParse("1.2.840.10008.1.2.4.63")
	JPEGFullProgressionHierarchicalProcess25And27                          = MustParse("1.2.840.10008.1.2.4.64")
	JPEGLosslessHierarchicalProcess28                                       = MustParse("1.2.840.10008.1.2.4.65")
	JPEGLosslessHierarchicalProcess29                                       = MustParse("1.2.840.10008.1.2.4.66")
	JPEGLosslessNonHierarchicalFirstOrderPredictionProcess14SelectionValue1 = MustParse("1.2.840.10008.1.2.4.70")
	JPEGLsLosslessImageCompression                                          = MustParse("1.2.840.10008.1.2.4.80")
	JPEGLsLossyNearLosslessImageCompression                                 = MustParse("1.2.840.10008.1.2.4.81")
	JPEG2000ImageCompressionLosslessOnly                                    = MustParse("1.2.840.10008.1.2.4.90")
	JPEG2000ImageCompression                                                = MustParse("1.2.840.10008.1.2.4.91")
	JPEG2000Part2MultiComponentImageCompressionLosslessOnly                 = MustParse("1.2.840.10008.1.2.4.92")
	JPEG2000Part2MultiComponentImageCompression                            = MustParse("1.2.840.10008.1.2.4.93")
	JpipReferenced                                                          = MustParse("1.2.840.10008.1.2.4.94")
	JpipReferencedDeflate                                                   = MustParse("1.2.840.10008.1.2.4.95")
	RLELossless                                                             = MustParse("1.2.840.10008.1.2.5")
	Rfc2557MimeEncapsulation                                                = MustParse("1.2.840.10008.1.2.6.1")
	XMLEncoding                                                             = MustParse("1.2.840.10008.1.2.6.2")
	SMPTESt211020UncompressedProgressiveActiveVideo                        = MustParse("1.2.840.10008.1.2.7.1")
	SMPTESt211020UncompressedInterlacedActiveVideo                         = MustParse("1.2.840.10008.1.2.7.2")
	SMPTESt211030PcmDigitalAudio                                            = MustParse("1.2.840.10008.1.2.7.3")
	DeflatedImageFrameCompression                                           = MustParse("1.2.840.10008.1.2.8.1")
	Papyrus3ImplicitVRLittleEndian                                          = MustParse("1.2.840.10008.1.20")
)

// transferSyntaxDefs drives uid.go's registry init: every constant above
// gets one entry here, so Find/Lookup/IsEncapsulated/IsImplicitVR/
// IsBigEndian work for all 63 of them, not just the handful a caller
// happens to exercise directly by name.
var transferSyntaxDefs = []transferSyntaxDef{
	{ImplicitVRLittleEndian, "Implicit VR Little Endian", true, false, false, false},
	{ExplicitVRLittleEndian, "Explicit VR Little Endian", false, false, false, false},
	{EncapsulatedUncompressedExplicitVRLittleEndian, "Encapsulated Uncompressed Explicit VR Little Endian", false, false, true, false},
	{DeflatedExplicitVRLittleEndian, "Deflated Explicit VR Little Endian", false, false, false, false},
	{ExplicitVRBigEndian, "Explicit VR Big Endian", false, true, false, true},
	{Mpeg2MainProfileMainLevel, "MPEG2 Main Profile / Main Level", false, false, true, false},
	{FragmentableMpeg2MainProfileMainLevel, "Fragmentable MPEG2 Main Profile / Main Level", false, false, true, false},
	{Mpeg2MainProfileHighLevel, "MPEG2 Main Profile / High Level", false, false, true, false},
	{FragmentableMpeg2MainProfileHighLevel, "Fragmentable MPEG2 Main Profile / High Level", false, false, true, false},
	{MPEG4AvcH264HighProfileLevel41, "MPEG-4 AVC/H.264 High Profile / Level 4.1", false, false, true, false},
	{FragmentableMPEG4AvcH264HighProfileLevel41, "Fragmentable MPEG-4 AVC/H.264 High Profile / Level 4.1", false, false, true, false},
	{MPEG4AvcH264BdCompatibleHighProfileLevel41, "MPEG-4 AVC/H.264 BD-Compatible High Profile / Level 4.1", false, false, true, false},
	{FragmentableMPEG4AvcH264BdCompatibleHighProfileLevel41, "Fragmentable MPEG-4 AVC/H.264 BD-Compatible High Profile / Level 4.1", false, false, true, false},
	{MPEG4AvcH264HighProfileLevel42For2dVideo, "MPEG-4 AVC/H.264 High Profile / Level 4.2 For 2D Video", false, false, true, false},
	{FragmentableMPEG4AvcH264HighProfileLevel42For2dVideo, "Fragmentable MPEG-4 AVC/H.264 High Profile / Level 4.2 For 2D Video", false, false, true, false},
	{MPEG4AvcH264HighProfileLevel42For3dVideo, "MPEG-4 AVC/H.264 High Profile / Level 4.2 For 3D Video", false, false, true, false},
	{FragmentableMPEG4AvcH264HighProfileLevel42For3dVideo, "Fragmentable MPEG-4 AVC/H.264 High Profile / Level 4.2 For 3D Video", false, false, true, false},
	{MPEG4AvcH264StereoHighProfileLevel42, "MPEG-4 AVC/H.264 Stereo High Profile / Level 4.2", false, false, true, false},
	{FragmentableMPEG4AvcH264StereoHighProfileLevel42, "Fragmentable MPEG-4 AVC/H.264 Stereo High Profile / Level 4.2", false, false, true, false},
	{HevcH265MainProfileLevel51, "HEVC/H.265 Main Profile / Level 5.1", false, false, true, false},
	{HevcH265Main10ProfileLevel51, "HEVC/H.265 Main 10 Profile / Level 5.1", false, false, true, false},
	{JPEGXlLossless, "JPEG XL Lossless", false, false, true, false},
	{JPEGXlJPEGRecompression, "JPEG XL JPEG Recompression", false, false, true, false},
	{JPEGXl, "JPEG XL", false, false, true, false},
	{HighThroughputJPEG2000ImageCompressionLosslessOnly, "High-Throughput JPEG 2000 Image Compression (Lossless Only)", false, false, true, false},
	{HighThroughputJPEG2000WithRpclOptionsImageCompressionLosslessOnly, "High-Throughput JPEG 2000 with RPCL Options Image Compression (Lossless Only)", false, false, true, false},
	{HighThroughputJPEG2000ImageCompression, "High-Throughput JPEG 2000 Image Compression", false, false, true, false},
	{JpipHtj2kReferenced, "JPIP HTJ2K Referenced", false, false, true, false},
	{JpipHtj2kReferencedDeflate, "JPIP HTJ2K Referenced Deflate", false, false, true, false},
	{JPEGBaselineProcess1, "JPEG Baseline (Process 1)", false, false, true, false},
	{JPEGExtendedProcess2And4, "JPEG Extended (Process 2 & 4)", false, false, true, false},
	{JPEGExtendedProcess3And5, "JPEG Extended (Process 3 & 5)", false, false, true, true},
	{JPEGSpectralSelectionNonHierarchicalProcess6And8, "JPEG Spectral Selection, Non-Hierarchical (Process 6 & 8)", false, false, true, true},
	{JPEGSpectralSelectionNonHierarchicalProcess7And9, "JPEG Spectral Selection, Non-Hierarchical (Process 7 & 9)", false, false, true, true},
	{JPEGFullProgressionNonHierarchicalProcess10And12, "JPEG Full Progression, Non-Hierarchical (Process 10 & 12)", false, false, true, true},
	{JPEGFullProgressionNonHierarchicalProcess11And13, "JPEG Full Progression, Non-Hierarchical (Process 11 & 13)", false, false, true, true},
	{JPEGLosslessNonHierarchicalProcess14, "JPEG Lossless, Non-Hierarchical (Process 14)", false, false, true, false},
	{JPEGLosslessNonHierarchicalProcess15, "JPEG Lossless, Non-Hierarchical (Process 15)", false, false, true, true},
	{JPEGExtendedHierarchicalProcess16And18, "JPEG Extended, Hierarchical (Process 16 & 18)", false, false, true, true},
	{JPEGExtendedHierarchicalProcess17And19, "JPEG Extended, Hierarchical (Process 17 & 19)", false, false, true, true},
	{JPEGSpectralSelectionHierarchicalProcess20And22, "JPEG Spectral Selection, Hierarchical (Process 20 & 22)", false, false, true, true},
	{JPEGSpectralSelectionHierarchicalProcess21And23, "JPEG Spectral Selection, Hierarchical (Process 21 & 23)", false, false, true, true},
	{JPEGFullProgressionHierarchicalProcess24And26, "JPEG Full Progression, Hierarchical (Process 24 & 26)", false, false, true, true},
	{JPEGFullProgressionHierarchicalProcess25And27, "JPEG Full Progression, Hierarchical (Process 25 & 27)", false, false, true, true},
	{JPEGLosslessHierarchicalProcess28, "JPEG Lossless, Hierarchical (Process 28)", false, false, true, true},
	{JPEGLosslessHierarchicalProcess29, "JPEG Lossless, Hierarchical (Process 29)", false, false, true, true},
	{JPEGLosslessNonHierarchicalFirstOrderPredictionProcess14SelectionValue1, "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1])", false, false, true, false},
	{JPEGLsLosslessImageCompression, "JPEG-LS Lossless Image Compression", false, false, true, false},
	{JPEGLsLossyNearLosslessImageCompression, "JPEG-LS Lossy (Near-Lossless) Image Compression", false, false, true, false},
	{JPEG2000ImageCompressionLosslessOnly, "JPEG 2000 Image Compression (Lossless Only)", false, false, true, false},
	{JPEG2000ImageCompression, "JPEG 2000 Image Compression", false, false, true, false},
	{JPEG2000Part2MultiComponentImageCompressionLosslessOnly, "JPEG 2000 Part 2 Multi-Component Image Compression (Lossless Only)", false, false, true, false},
	{JPEG2000Part2MultiComponentImageCompression, "JPEG 2000 Part 2 Multi-Component Image Compression", false, false, true, false},
	{JpipReferenced, "JPIP Referenced", false, false, true, false},
	{JpipReferencedDeflate, "JPIP Referenced Deflate", false, false, true, false},
	{RLELossless, "RLE Lossless", false, false, true, false},
	{Rfc2557MimeEncapsulation, "RFC 2557 MIME Encapsulation", false, false, true, true},
	{XMLEncoding, "XML Encoding", false, false, false, true},
	{SMPTESt211020UncompressedProgressiveActiveVideo, "SMPTE ST 2110-20 Uncompressed Progressive Active Video", false, false, false, false},
	{SMPTESt211020UncompressedInterlacedActiveVideo, "SMPTE ST 2110-20 Uncompressed Interlaced Active Video", false, false, false, false},
	{SMPTESt211030PcmDigitalAudio, "SMPTE ST 2110-30 PCM Digital Audio", false, false, false, false},
	{DeflatedImageFrameCompression, "Deflated Image Frame Compression", false, false, true, false},
	{Papyrus3ImplicitVRLittleEndian, "Papyrus 3 Implicit VR Little Endian", true, false, false, true},
}
