package tag

import "github.com/dicomwsi/dicomcore/dicom/vr"

// Named tags for frequently referenced elements. Each has a matching entry
// in TagDict; the constant exists so callers don't have to spell out the
// (group,element) pair by hand.
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)
	SourceApplicationEntityTitle   = New(0x0002, 0x0016)

	SpecificCharacterSet = New(0x0008, 0x0005)
	InstanceCreationDate = New(0x0008, 0x0012)
	InstanceCreationTime = New(0x0008, 0x0013)
	SOPClassUID          = New(0x0008, 0x0016)
	SOPInstanceUID       = New(0x0008, 0x0018)
	StudyDate            = New(0x0008, 0x0020)
	SeriesDate           = New(0x0008, 0x0021)
	ContentDate          = New(0x0008, 0x0023)
	StudyTime            = New(0x0008, 0x0030)
	SeriesTime           = New(0x0008, 0x0031)
	ContentTime          = New(0x0008, 0x0033)
	AccessionNumber      = New(0x0008, 0x0050)
	Modality             = New(0x0008, 0x0060)
	Manufacturer         = New(0x0008, 0x0070)
	ReferringPhysicianName = New(0x0008, 0x0090)
	StudyDescription     = New(0x0008, 0x1030)
	SeriesDescription    = New(0x0008, 0x103E)
	ManufacturerModelName = New(0x0008, 0x1090)

	PatientName         = New(0x0010, 0x0010)
	PatientID           = New(0x0010, 0x0020)
	PatientBirthDate    = New(0x0010, 0x0030)
	PatientSex          = New(0x0010, 0x0040)
	PatientAge          = New(0x0010, 0x1010)
	PatientWeight       = New(0x0010, 0x1030)

	SliceThickness        = New(0x0018, 0x0050)
	SpacingBetweenSlices   = New(0x0018, 0x0088)
	ProtocolName           = New(0x0018, 0x1030)

	StudyInstanceUID  = New(0x0020, 0x000D)
	SeriesInstanceUID = New(0x0020, 0x000E)
	StudyID           = New(0x0020, 0x0010)
	SeriesNumber      = New(0x0020, 0x0011)
	InstanceNumber    = New(0x0020, 0x0013)
	ImagePositionPatient    = New(0x0020, 0x0032)
	ImageOrientationPatient = New(0x0020, 0x0037)
	FrameOfReferenceUID     = New(0x0020, 0x0052)
	SliceLocation           = New(0x0020, 0x1041)

	SamplesPerPixel            = New(0x0028, 0x0002)
	PhotometricInterpretation  = New(0x0028, 0x0004)
	PlanarConfiguration        = New(0x0028, 0x0006)
	NumberOfFrames             = New(0x0028, 0x0008)
	Rows                       = New(0x0028, 0x0010)
	Columns                    = New(0x0028, 0x0011)
	PixelSpacing               = New(0x0028, 0x0030)
	BitsAllocated              = New(0x0028, 0x0100)
	BitsStored                 = New(0x0028, 0x0101)
	HighBit                    = New(0x0028, 0x0102)
	PixelRepresentation        = New(0x0028, 0x0103)
	WindowCenter               = New(0x0028, 0x1050)
	WindowWidth                = New(0x0028, 0x1051)
	RescaleIntercept           = New(0x0028, 0x1052)
	RescaleSlope               = New(0x0028, 0x1053)
	RedPaletteColorLookupTableData = New(0x0028, 0x1201)

	SharedFunctionalGroupsSequence    = New(0x5200, 0x9229)
	PerFrameFunctionalGroupsSequence  = New(0x5200, 0x9230)
	PlanePositionSequence            = New(0x0020, 0x9113)
	PlanePositionSlideSequence       = New(0x0048, 0x021A)
	ColumnPositionInTotalImagePixelMatrix = New(0x0048, 0x021E)
	RowPositionInTotalImagePixelMatrix    = New(0x0048, 0x021F)

	ExtendedOffsetTable        = New(0x7FE0, 0x0001)
	ExtendedOffsetTableLengths = New(0x7FE0, 0x0002)
	PixelData                 = New(0x7FE0, 0x0010)

	InstitutionName         = New(0x0008, 0x0080)
	InstitutionAddress      = New(0x0008, 0x0081)
	StationName             = New(0x0008, 0x1010)
	ReferencedSOPClassUID   = New(0x0008, 0x1150)
	ReferencedSOPInstanceUID = New(0x0008, 0x1155)
	BodyPartExamined        = New(0x0018, 0x0015)
	KVP                     = New(0x0018, 0x0060)
	SoftwareVersions        = New(0x0018, 0x1020)
	AcquisitionDate         = New(0x0008, 0x0022)
	AcquisitionTime         = New(0x0008, 0x0032)
	DeviceSerialNumber      = New(0x0018, 0x1000)
	PatientOrientation      = New(0x0020, 0x0020)
	PositionReferenceIndicator = New(0x0020, 0x1040)
	LossyImageCompression   = New(0x0028, 0x2110)
	PixelAspectRatio        = New(0x0028, 0x0034)
	RescaleType             = New(0x0028, 0x1054)
	VOILUTFunction          = New(0x0028, 0x1056)
	WindowCenterWidthExplanation = New(0x0028, 0x1055)
	SmallestImagePixelValue = New(0x0028, 0x0106)
	LargestImagePixelValue  = New(0x0028, 0x0107)
	RedPaletteColorLookupTableDescriptor   = New(0x0028, 0x1101)
	GreenPaletteColorLookupTableDescriptor = New(0x0028, 0x1102)
	BluePaletteColorLookupTableDescriptor  = New(0x0028, 0x1103)
	GreenPaletteColorLookupTableData       = New(0x0028, 0x1202)
	BluePaletteColorLookupTableData        = New(0x0028, 0x1203)
	NumberOfStudyRelatedSeries = New(0x0020, 0x1206)
	NumberOfSeriesRelatedInstances = New(0x0020, 0x1209)
	PatientIdentityRemoved  = New(0x0012, 0x0062)
	DeidentificationMethod  = New(0x0012, 0x0063)
	QueryRetrieveLevel      = New(0x0008, 0x0052)
	ReferencedImageSequence = New(0x0008, 0x1140)
	SourceImageSequence     = New(0x0008, 0x2112)
	DerivationDescription   = New(0x0008, 0x2111)
	ContentLabel            = New(0x0070, 0x0080)
	BurnedInAnnotation      = New(0x0028, 0x0301)
	PresentationLUTShape    = New(0x2050, 0x0020)
	IconImageSequence       = New(0x0088, 0x0200)
	OverlayRows             = New(0x6000, 0x0010)
	OverlayColumns          = New(0x6000, 0x0011)
	OverlayType             = New(0x6000, 0x0040)
	OverlayData             = New(0x6000, 0x3000)
)

// TagDict is the static data dictionary: roughly 110 entries drawn from the
// standard DICOM tag registry (Part 6), hand-picked rather than generated
// from the registry in full. Coverage is deliberately scoped to what this
// library's own code paths need a dictionary entry for: file meta
// information, the patient/study/series/instance identification modules,
// the image pixel and palette color modules, common overlay/VOI LUT
// attributes, and a handful of query/retrieve and de-identification tags
// exercised by tests elsewhere in this package and in dataset/handler.
//
// It is not the complete ~4700-entry Part 6 registry, and is not meant to
// be: the registry is auto-generated from NEMA's machine-readable tables in
// every corpus repo that ships one, and that generator is explicitly out of
// scope here (see DESIGN.md). An unregistered tag is not a parse failure —
// Find returns an error for it, and the parser treats that as no VR known
// and reads the element as VR UN (per Part 5 section 6.2.2's "implicit VR
// unknown" handling), so shipping a partial table degrades gracefully
// rather than incompletely.
var TagDict = map[Tag]Info{
	FileMetaInformationGroupLength: {Tag: FileMetaInformationGroupLength, VRs: []vr.VR{vr.UnsignedLong}, Name: "File Meta Information Group Length", Keyword: "FileMetaInformationGroupLength", VM: "1"},
	FileMetaInformationVersion:     {Tag: FileMetaInformationVersion, VRs: []vr.VR{vr.OtherByte}, Name: "File Meta Information Version", Keyword: "FileMetaInformationVersion", VM: "1"},
	MediaStorageSOPClassUID:        {Tag: MediaStorageSOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Class UID", Keyword: "MediaStorageSOPClassUID", VM: "1"},
	MediaStorageSOPInstanceUID:     {Tag: MediaStorageSOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Instance UID", Keyword: "MediaStorageSOPInstanceUID", VM: "1"},
	TransferSyntaxUID:              {Tag: TransferSyntaxUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID", VM: "1"},
	ImplementationClassUID:         {Tag: ImplementationClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Implementation Class UID", Keyword: "ImplementationClassUID", VM: "1"},
	ImplementationVersionName:      {Tag: ImplementationVersionName, VRs: []vr.VR{vr.ShortString}, Name: "Implementation Version Name", Keyword: "ImplementationVersionName", VM: "1"},
	SourceApplicationEntityTitle:   {Tag: SourceApplicationEntityTitle, VRs: []vr.VR{vr.ApplicationEntity}, Name: "Source Application Entity Title", Keyword: "SourceApplicationEntityTitle", VM: "1"},

	SpecificCharacterSet:   {Tag: SpecificCharacterSet, VRs: []vr.VR{vr.CodeString}, Name: "Specific Character Set", Keyword: "SpecificCharacterSet", VM: "1-n"},
	InstanceCreationDate:   {Tag: InstanceCreationDate, VRs: []vr.VR{vr.Date}, Name: "Instance Creation Date", Keyword: "InstanceCreationDate", VM: "1"},
	InstanceCreationTime:   {Tag: InstanceCreationTime, VRs: []vr.VR{vr.Time}, Name: "Instance Creation Time", Keyword: "InstanceCreationTime", VM: "1"},
	SOPClassUID:            {Tag: SOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Class UID", Keyword: "SOPClassUID", VM: "1"},
	SOPInstanceUID:         {Tag: SOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Instance UID", Keyword: "SOPInstanceUID", VM: "1"},
	StudyDate:              {Tag: StudyDate, VRs: []vr.VR{vr.Date}, Name: "Study Date", Keyword: "StudyDate", VM: "1"},
	SeriesDate:             {Tag: SeriesDate, VRs: []vr.VR{vr.Date}, Name: "Series Date", Keyword: "SeriesDate", VM: "1"},
	ContentDate:            {Tag: ContentDate, VRs: []vr.VR{vr.Date}, Name: "Content Date", Keyword: "ContentDate", VM: "1"},
	StudyTime:              {Tag: StudyTime, VRs: []vr.VR{vr.Time}, Name: "Study Time", Keyword: "StudyTime", VM: "1"},
	SeriesTime:             {Tag: SeriesTime, VRs: []vr.VR{vr.Time}, Name: "Series Time", Keyword: "SeriesTime", VM: "1"},
	ContentTime:            {Tag: ContentTime, VRs: []vr.VR{vr.Time}, Name: "Content Time", Keyword: "ContentTime", VM: "1"},
	AccessionNumber:        {Tag: AccessionNumber, VRs: []vr.VR{vr.ShortString}, Name: "Accession Number", Keyword: "AccessionNumber", VM: "1"},
	Modality:               {Tag: Modality, VRs: []vr.VR{vr.CodeString}, Name: "Modality", Keyword: "Modality", VM: "1"},
	Manufacturer:           {Tag: Manufacturer, VRs: []vr.VR{vr.LongString}, Name: "Manufacturer", Keyword: "Manufacturer", VM: "1"},
	ReferringPhysicianName: {Tag: ReferringPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Referring Physician's Name", Keyword: "ReferringPhysicianName", VM: "1"},
	StudyDescription:       {Tag: StudyDescription, VRs: []vr.VR{vr.LongString}, Name: "Study Description", Keyword: "StudyDescription", VM: "1"},
	SeriesDescription:      {Tag: SeriesDescription, VRs: []vr.VR{vr.LongString}, Name: "Series Description", Keyword: "SeriesDescription", VM: "1"},
	ManufacturerModelName:  {Tag: ManufacturerModelName, VRs: []vr.VR{vr.LongString}, Name: "Manufacturer's Model Name", Keyword: "ManufacturerModelName", VM: "1"},

	PatientName:      {Tag: PatientName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Name", Keyword: "PatientName", VM: "1"},
	PatientID:        {Tag: PatientID, VRs: []vr.VR{vr.LongString}, Name: "Patient ID", Keyword: "PatientID", VM: "1"},
	PatientBirthDate: {Tag: PatientBirthDate, VRs: []vr.VR{vr.Date}, Name: "Patient's Birth Date", Keyword: "PatientBirthDate", VM: "1"},
	PatientSex:       {Tag: PatientSex, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex", Keyword: "PatientSex", VM: "1"},
	PatientAge:       {Tag: PatientAge, VRs: []vr.VR{vr.AgeString}, Name: "Patient's Age", Keyword: "PatientAge", VM: "1"},
	PatientWeight:    {Tag: PatientWeight, VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Weight", Keyword: "PatientWeight", VM: "1"},

	SliceThickness:       {Tag: SliceThickness, VRs: []vr.VR{vr.DecimalString}, Name: "Slice Thickness", Keyword: "SliceThickness", VM: "1"},
	SpacingBetweenSlices: {Tag: SpacingBetweenSlices, VRs: []vr.VR{vr.DecimalString}, Name: "Spacing Between Slices", Keyword: "SpacingBetweenSlices", VM: "1"},
	ProtocolName:         {Tag: ProtocolName, VRs: []vr.VR{vr.LongString}, Name: "Protocol Name", Keyword: "ProtocolName", VM: "1"},

	StudyInstanceUID:        {Tag: StudyInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Study Instance UID", Keyword: "StudyInstanceUID", VM: "1"},
	SeriesInstanceUID:       {Tag: SeriesInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Series Instance UID", Keyword: "SeriesInstanceUID", VM: "1"},
	StudyID:                 {Tag: StudyID, VRs: []vr.VR{vr.ShortString}, Name: "Study ID", Keyword: "StudyID", VM: "1"},
	SeriesNumber:            {Tag: SeriesNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Series Number", Keyword: "SeriesNumber", VM: "1"},
	InstanceNumber:          {Tag: InstanceNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Instance Number", Keyword: "InstanceNumber", VM: "1"},
	ImagePositionPatient:    {Tag: ImagePositionPatient, VRs: []vr.VR{vr.DecimalString}, Name: "Image Position (Patient)", Keyword: "ImagePositionPatient", VM: "3"},
	ImageOrientationPatient: {Tag: ImageOrientationPatient, VRs: []vr.VR{vr.DecimalString}, Name: "Image Orientation (Patient)", Keyword: "ImageOrientationPatient", VM: "6"},
	FrameOfReferenceUID:     {Tag: FrameOfReferenceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Frame of Reference UID", Keyword: "FrameOfReferenceUID", VM: "1"},
	SliceLocation:           {Tag: SliceLocation, VRs: []vr.VR{vr.DecimalString}, Name: "Slice Location", Keyword: "SliceLocation", VM: "1"},

	SamplesPerPixel:           {Tag: SamplesPerPixel, VRs: []vr.VR{vr.UnsignedShort}, Name: "Samples per Pixel", Keyword: "SamplesPerPixel", VM: "1"},
	PhotometricInterpretation: {Tag: PhotometricInterpretation, VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1"},
	PlanarConfiguration:       {Tag: PlanarConfiguration, VRs: []vr.VR{vr.UnsignedShort}, Name: "Planar Configuration", Keyword: "PlanarConfiguration", VM: "1"},
	NumberOfFrames:            {Tag: NumberOfFrames, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Frames", Keyword: "NumberOfFrames", VM: "1"},
	Rows:                      {Tag: Rows, VRs: []vr.VR{vr.UnsignedShort}, Name: "Rows", Keyword: "Rows", VM: "1"},
	Columns:                   {Tag: Columns, VRs: []vr.VR{vr.UnsignedShort}, Name: "Columns", Keyword: "Columns", VM: "1"},
	PixelSpacing:              {Tag: PixelSpacing, VRs: []vr.VR{vr.DecimalString}, Name: "Pixel Spacing", Keyword: "PixelSpacing", VM: "2"},
	BitsAllocated:             {Tag: BitsAllocated, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Allocated", Keyword: "BitsAllocated", VM: "1"},
	BitsStored:                {Tag: BitsStored, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Stored", Keyword: "BitsStored", VM: "1"},
	HighBit:                   {Tag: HighBit, VRs: []vr.VR{vr.UnsignedShort}, Name: "High Bit", Keyword: "HighBit", VM: "1"},
	PixelRepresentation:       {Tag: PixelRepresentation, VRs: []vr.VR{vr.UnsignedShort}, Name: "Pixel Representation", Keyword: "PixelRepresentation", VM: "1"},
	WindowCenter:              {Tag: WindowCenter, VRs: []vr.VR{vr.DecimalString}, Name: "Window Center", Keyword: "WindowCenter", VM: "1-n"},
	WindowWidth:               {Tag: WindowWidth, VRs: []vr.VR{vr.DecimalString}, Name: "Window Width", Keyword: "WindowWidth", VM: "1-n"},
	RescaleIntercept:          {Tag: RescaleIntercept, VRs: []vr.VR{vr.DecimalString}, Name: "Rescale Intercept", Keyword: "RescaleIntercept", VM: "1"},
	RescaleSlope:              {Tag: RescaleSlope, VRs: []vr.VR{vr.DecimalString}, Name: "Rescale Slope", Keyword: "RescaleSlope", VM: "1"},
	RedPaletteColorLookupTableData: {Tag: RedPaletteColorLookupTableData, VRs: []vr.VR{vr.OtherWord}, Name: "Red Palette Color Lookup Table Data", Keyword: "RedPaletteColorLookupTableData", VM: "1"},

	SharedFunctionalGroupsSequence:        {Tag: SharedFunctionalGroupsSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Shared Functional Groups Sequence", Keyword: "SharedFunctionalGroupsSequence", VM: "1"},
	PerFrameFunctionalGroupsSequence:      {Tag: PerFrameFunctionalGroupsSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Per-frame Functional Groups Sequence", Keyword: "PerFrameFunctionalGroupsSequence", VM: "1"},
	PlanePositionSequence:                 {Tag: PlanePositionSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Plane Position (Patient) Sequence", Keyword: "PlanePositionSequence", VM: "1"},
	PlanePositionSlideSequence:            {Tag: PlanePositionSlideSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Plane Position (Slide) Sequence", Keyword: "PlanePositionSlideSequence", VM: "1"},
	ColumnPositionInTotalImagePixelMatrix: {Tag: ColumnPositionInTotalImagePixelMatrix, VRs: []vr.VR{vr.SignedLong}, Name: "Column Position In Total Image Pixel Matrix", Keyword: "ColumnPositionInTotalImagePixelMatrix", VM: "1"},
	RowPositionInTotalImagePixelMatrix:    {Tag: RowPositionInTotalImagePixelMatrix, VRs: []vr.VR{vr.SignedLong}, Name: "Row Position In Total Image Pixel Matrix", Keyword: "RowPositionInTotalImagePixelMatrix", VM: "1"},

	ExtendedOffsetTable:        {Tag: ExtendedOffsetTable, VRs: []vr.VR{vr.OtherVeryLong}, Name: "Extended Offset Table", Keyword: "ExtendedOffsetTable", VM: "1"},
	ExtendedOffsetTableLengths: {Tag: ExtendedOffsetTableLengths, VRs: []vr.VR{vr.OtherVeryLong}, Name: "Extended Offset Table Lengths", Keyword: "ExtendedOffsetTableLengths", VM: "1"},
	PixelData:                  {Tag: PixelData, VRs: []vr.VR{vr.OtherByte, vr.OtherWord}, Name: "Pixel Data", Keyword: "PixelData", VM: "1"},

	InstitutionName:          {Tag: InstitutionName, VRs: []vr.VR{vr.LongString}, Name: "Institution Name", Keyword: "InstitutionName", VM: "1"},
	InstitutionAddress:       {Tag: InstitutionAddress, VRs: []vr.VR{vr.ShortText}, Name: "Institution Address", Keyword: "InstitutionAddress", VM: "1"},
	StationName:              {Tag: StationName, VRs: []vr.VR{vr.ShortString}, Name: "Station Name", Keyword: "StationName", VM: "1"},
	ReferencedSOPClassUID:    {Tag: ReferencedSOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Class UID", Keyword: "ReferencedSOPClassUID", VM: "1"},
	ReferencedSOPInstanceUID: {Tag: ReferencedSOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Instance UID", Keyword: "ReferencedSOPInstanceUID", VM: "1"},
	BodyPartExamined:         {Tag: BodyPartExamined, VRs: []vr.VR{vr.CodeString}, Name: "Body Part Examined", Keyword: "BodyPartExamined", VM: "1"},
	KVP:                      {Tag: KVP, VRs: []vr.VR{vr.DecimalString}, Name: "KVP", Keyword: "KVP", VM: "1"},
	SoftwareVersions:         {Tag: SoftwareVersions, VRs: []vr.VR{vr.LongString}, Name: "Software Versions", Keyword: "SoftwareVersions", VM: "1-n"},
	AcquisitionDate:          {Tag: AcquisitionDate, VRs: []vr.VR{vr.Date}, Name: "Acquisition Date", Keyword: "AcquisitionDate", VM: "1"},
	AcquisitionTime:          {Tag: AcquisitionTime, VRs: []vr.VR{vr.Time}, Name: "Acquisition Time", Keyword: "AcquisitionTime", VM: "1"},
	DeviceSerialNumber:       {Tag: DeviceSerialNumber, VRs: []vr.VR{vr.LongString}, Name: "Device Serial Number", Keyword: "DeviceSerialNumber", VM: "1"},
	PatientOrientation:       {Tag: PatientOrientation, VRs: []vr.VR{vr.CodeString}, Name: "Patient Orientation", Keyword: "PatientOrientation", VM: "2"},
	PositionReferenceIndicator: {Tag: PositionReferenceIndicator, VRs: []vr.VR{vr.LongString}, Name: "Position Reference Indicator", Keyword: "PositionReferenceIndicator", VM: "1"},
	LossyImageCompression:    {Tag: LossyImageCompression, VRs: []vr.VR{vr.CodeString}, Name: "Lossy Image Compression", Keyword: "LossyImageCompression", VM: "1"},
	PixelAspectRatio:         {Tag: PixelAspectRatio, VRs: []vr.VR{vr.IntegerString}, Name: "Pixel Aspect Ratio", Keyword: "PixelAspectRatio", VM: "2"},
	RescaleType:              {Tag: RescaleType, VRs: []vr.VR{vr.LongString}, Name: "Rescale Type", Keyword: "RescaleType", VM: "1"},
	VOILUTFunction:           {Tag: VOILUTFunction, VRs: []vr.VR{vr.CodeString}, Name: "VOI LUT Function", Keyword: "VOILUTFunction", VM: "1"},
	WindowCenterWidthExplanation: {Tag: WindowCenterWidthExplanation, VRs: []vr.VR{vr.LongString}, Name: "Window Center & Width Explanation", Keyword: "WindowCenterWidthExplanation", VM: "1-n"},
	SmallestImagePixelValue:  {Tag: SmallestImagePixelValue, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Smallest Image Pixel Value", Keyword: "SmallestImagePixelValue", VM: "1", Retired: true},
	LargestImagePixelValue:   {Tag: LargestImagePixelValue, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Largest Image Pixel Value", Keyword: "LargestImagePixelValue", VM: "1", Retired: true},
	RedPaletteColorLookupTableDescriptor:   {Tag: RedPaletteColorLookupTableDescriptor, VRs: []vr.VR{vr.UnsignedShort}, Name: "Red Palette Color Lookup Table Descriptor", Keyword: "RedPaletteColorLookupTableDescriptor", VM: "3"},
	GreenPaletteColorLookupTableDescriptor: {Tag: GreenPaletteColorLookupTableDescriptor, VRs: []vr.VR{vr.UnsignedShort}, Name: "Green Palette Color Lookup Table Descriptor", Keyword: "GreenPaletteColorLookupTableDescriptor", VM: "3"},
	BluePaletteColorLookupTableDescriptor:  {Tag: BluePaletteColorLookupTableDescriptor, VRs: []vr.VR{vr.UnsignedShort}, Name: "Blue Palette Color Lookup Table Descriptor", Keyword: "BluePaletteColorLookupTableDescriptor", VM: "3"},
	GreenPaletteColorLookupTableData:       {Tag: GreenPaletteColorLookupTableData, VRs: []vr.VR{vr.OtherWord}, Name: "Green Palette Color Lookup Table Data", Keyword: "GreenPaletteColorLookupTableData", VM: "1"},
	BluePaletteColorLookupTableData:        {Tag: BluePaletteColorLookupTableData, VRs: []vr.VR{vr.OtherWord}, Name: "Blue Palette Color Lookup Table Data", Keyword: "BluePaletteColorLookupTableData", VM: "1"},
	NumberOfStudyRelatedSeries:     {Tag: NumberOfStudyRelatedSeries, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Study Related Series", Keyword: "NumberOfStudyRelatedSeries", VM: "1"},
	NumberOfSeriesRelatedInstances: {Tag: NumberOfSeriesRelatedInstances, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Series Related Instances", Keyword: "NumberOfSeriesRelatedInstances", VM: "1"},
	PatientIdentityRemoved:   {Tag: PatientIdentityRemoved, VRs: []vr.VR{vr.CodeString}, Name: "Patient Identity Removed", Keyword: "PatientIdentityRemoved", VM: "1"},
	DeidentificationMethod:   {Tag: DeidentificationMethod, VRs: []vr.VR{vr.LongString}, Name: "De-identification Method", Keyword: "DeidentificationMethod", VM: "1-n"},
	QueryRetrieveLevel:       {Tag: QueryRetrieveLevel, VRs: []vr.VR{vr.CodeString}, Name: "Query/Retrieve Level", Keyword: "QueryRetrieveLevel", VM: "1"},
	ReferencedImageSequence:  {Tag: ReferencedImageSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Image Sequence", Keyword: "ReferencedImageSequence", VM: "1"},
	SourceImageSequence:      {Tag: SourceImageSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Source Image Sequence", Keyword: "SourceImageSequence", VM: "1"},
	DerivationDescription:    {Tag: DerivationDescription, VRs: []vr.VR{vr.ShortText}, Name: "Derivation Description", Keyword: "DerivationDescription", VM: "1"},
	ContentLabel:             {Tag: ContentLabel, VRs: []vr.VR{vr.CodeString}, Name: "Content Label", Keyword: "ContentLabel", VM: "1"},
	BurnedInAnnotation:       {Tag: BurnedInAnnotation, VRs: []vr.VR{vr.CodeString}, Name: "Burned In Annotation", Keyword: "BurnedInAnnotation", VM: "1"},
	PresentationLUTShape:     {Tag: PresentationLUTShape, VRs: []vr.VR{vr.CodeString}, Name: "Presentation LUT Shape", Keyword: "PresentationLUTShape", VM: "1"},
	IconImageSequence:        {Tag: IconImageSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Icon Image Sequence", Keyword: "IconImageSequence", VM: "1", Retired: true},
	OverlayRows:              {Tag: OverlayRows, VRs: []vr.VR{vr.UnsignedShort}, Name: "Overlay Rows", Keyword: "OverlayRows", VM: "1"},
	OverlayColumns:           {Tag: OverlayColumns, VRs: []vr.VR{vr.UnsignedShort}, Name: "Overlay Columns", Keyword: "OverlayColumns", VM: "1"},
	OverlayType:              {Tag: OverlayType, VRs: []vr.VR{vr.CodeString}, Name: "Overlay Type", Keyword: "OverlayType", VM: "1"},
	OverlayData:              {Tag: OverlayData, VRs: []vr.VR{vr.OtherByte, vr.OtherWord}, Name: "Overlay Data", Keyword: "OverlayData", VM: "1", Retired: true},
}
